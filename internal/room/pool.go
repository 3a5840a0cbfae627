// internal/room/pool.go
package room

import "github.com/Tamil-18-12/IPL-Auction-Simulator/internal/models"

// DefaultPlayerPool returns a fresh copy of the built-in lot queue, used when
// start_auction supplies no queue of its own.
func DefaultPlayerPool() []*models.Player {
	pool := []models.Player{
		{Name: "Virat Kohli", Role: "Batsman", BasePrice: 200, Batting: 94, Bowling: 30, Luck: 70},
		{Name: "Rohit Sharma", Role: "Batsman", BasePrice: 200, Batting: 90, Bowling: 35, Luck: 65},
		{Name: "Jasprit Bumrah", Role: "Bowler", BasePrice: 200, Batting: 20, Bowling: 96, Luck: 80},
		{Name: "Ravindra Jadeja", Role: "All-Rounder", BasePrice: 180, Batting: 74, Bowling: 84, Luck: 75},
		{Name: "MS Dhoni", Role: "Wicket-Keeper", BasePrice: 180, Batting: 82, Bowling: 10, Luck: 90},
		{Name: "KL Rahul", Role: "Wicket-Keeper", BasePrice: 160, Batting: 85, Bowling: 10, Luck: 60},
		{Name: "Hardik Pandya", Role: "All-Rounder", BasePrice: 180, Batting: 78, Bowling: 76, Luck: 70},
		{Name: "Mohammed Shami", Role: "Bowler", BasePrice: 150, Batting: 18, Bowling: 90, Luck: 65},
		{Name: "Suryakumar Yadav", Role: "Batsman", BasePrice: 160, Batting: 88, Bowling: 15, Luck: 72},
		{Name: "Yuzvendra Chahal", Role: "Bowler", BasePrice: 140, Batting: 12, Bowling: 86, Luck: 68},
		{Name: "Rishabh Pant", Role: "Wicket-Keeper", BasePrice: 160, Batting: 84, Bowling: 10, Luck: 66},
		{Name: "Shubman Gill", Role: "Batsman", BasePrice: 150, Batting: 86, Bowling: 20, Luck: 64},
		{Name: "Kuldeep Yadav", Role: "Bowler", BasePrice: 130, Batting: 15, Bowling: 85, Luck: 62},
		{Name: "Axar Patel", Role: "All-Rounder", BasePrice: 130, Batting: 62, Bowling: 80, Luck: 70},
		{Name: "Shreyas Iyer", Role: "Batsman", BasePrice: 140, Batting: 82, Bowling: 25, Luck: 58},
		{Name: "Mohammed Siraj", Role: "Bowler", BasePrice: 130, Batting: 14, Bowling: 87, Luck: 60},
		{Name: "Ishan Kishan", Role: "Wicket-Keeper", BasePrice: 120, Batting: 80, Bowling: 10, Luck: 55},
		{Name: "Washington Sundar", Role: "All-Rounder", BasePrice: 110, Batting: 58, Bowling: 76, Luck: 63},
		{Name: "Arshdeep Singh", Role: "Bowler", BasePrice: 110, Batting: 12, Bowling: 82, Luck: 58},
		{Name: "Ruturaj Gaikwad", Role: "Batsman", BasePrice: 120, Batting: 83, Bowling: 18, Luck: 61},
		{Name: "Sanju Samson", Role: "Wicket-Keeper", BasePrice: 120, Batting: 81, Bowling: 10, Luck: 59},
		{Name: "Ravichandran Ashwin", Role: "Bowler", BasePrice: 120, Batting: 40, Bowling: 88, Luck: 66},
	}
	out := make([]*models.Player, len(pool))
	for i := range pool {
		p := pool[i]
		out[i] = &p
	}
	return out
}

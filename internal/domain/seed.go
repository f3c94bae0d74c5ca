package domain

// SeedEvents returns the reference records the board starts from. Each call
// returns a fresh slice.
func SeedEvents() []EventRecord {
	return []EventRecord{
		{
			ID:          "1",
			Location:    "Tokyo, Japan",
			Magnitude:   5.2,
			Confidence:  87,
			TweetCount:  245,
			Timestamp:   "2 min ago",
			Status:      StatusConfirmed,
			TopTweet:    "Just felt a strong earthquake in Shibuya! Buildings are swaying... #earthquake #Tokyo",
			Coordinates: Coordinates{139.7, 35.7},
		},
		{
			ID:          "2",
			Location:    "Los Angeles, CA",
			Magnitude:   4.1,
			Confidence:  73,
			TweetCount:  89,
			Timestamp:   "8 min ago",
			Status:      StatusDetecting,
			TopTweet:    "Did anyone else feel that shake? My whole apartment just moved #earthquake #LA",
			Coordinates: Coordinates{-118.2, 34.0},
		},
		{
			ID:          "3",
			Location:    "Istanbul, Turkey",
			Magnitude:   3.8,
			Confidence:  45,
			TweetCount:  23,
			Timestamp:   "15 min ago",
			Status:      StatusFalseAlarm,
			TopTweet:    "Heavy trucks passing by causing vibrations, thought it was earthquake lol",
			Coordinates: Coordinates{28.9, 41.0},
		},
	}
}

package entities

// DefaultCatalog returns the activities the school offers at startup, in display order.
// Every call returns fresh slices.
func DefaultCatalog() []Activity {
	return []Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball team for intramural and tournament play",
			Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"james@mergington.edu"},
		},
		{
			Name:            "Tennis Club",
			Description:     "Learn tennis skills and compete in matches",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 10,
			Participants:    []string{"alex@mergington.edu", "sara@mergington.edu"},
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and sculpture techniques",
			Schedule:        "Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 16,
			Participants:    []string{"isabella@mergington.edu"},
		},
		{
			Name:            "Drama Club",
			Description:     "Perform in theatrical productions and develop acting skills",
			Schedule:        "Mondays and Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Robotics Club",
			Description:     "Build and program robots for competitions",
			Schedule:        "Tuesdays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    []string{"noah@mergington.edu"},
		},
		{
			Name:            "Science Olympiad",
			Description:     "Compete in science challenges and experiments",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 15,
			Participants:    []string{"ava@mergington.edu", "ethan@mergington.edu"},
		},
	}
}

package repository

import "github.com/folioforge/portfolio-backend/internal/projects/domain"

// SeedProjects returns the sample portfolio entries so a fresh memory-backed
// process serves a non-empty list.
func SeedProjects() []domain.Project {
	return []domain.Project{
		{
			ID:           "1",
			Title:        "New Zealand Website",
			Description:  "A responsive site showcasing NZ's culture and tourism with interactive elements.",
			Technologies: []string{"HTML", "CSS", "JavaScript", "Bootstrap"},
			Keywords:     []string{"web development", "design", "New Zealand", "tourism", "responsive design"},
			ImageURL:     "https://lukeponga-dev.github.io/images/nz.png",
			CreatedAt:    "2023-03-15T00:00:00Z",
		},
		{
			ID:           "2",
			Title:        "Doctors Appointments",
			Description:  "A healthcare management system for scheduling appointments and managing patient records.",
			Technologies: []string{"C#", "ASP.NET", "SQL Server"},
			Keywords:     []string{"healthcare", "appointment tracking", "software development", "patient management"},
			ImageURL:     "https://lukeponga-dev.github.io/images/doctors.png",
			CreatedAt:    "2023-07-20T00:00:00Z",
		},
		{
			ID:           "3",
			Title:        "Health Clinic MVC",
			Description:  "An MVC app for managing clinic operations, including patient data, appointments, and billing.",
			Technologies: []string{"MVC", "Entity Framework", "C#"},
			Keywords:     []string{"MVC", "healthcare", "clinic management", "billing"},
			ImageURL:     "https://lukeponga-dev.github.io/images/clinic.png",
			CreatedAt:    "2023-09-01T00:00:00Z",
		},
		{
			ID:           "4",
			Title:        "CosmicPic - Explore the Universe",
			Description:  "A web app that allows users to explore stunning images of the universe, powered by NASA's API.",
			Technologies: []string{"React", "Node.js", "CSS", "JavaScript", "API Integration", "Responsive Design"},
			Keywords:     []string{"space", "NASA", "API", "React", "astronomy"},
			ImageURL:     "https://lukeponga-dev.github.io/images/cosmic.png",
			CreatedAt:    "2024-01-10T00:00:00Z",
		},
	}
}

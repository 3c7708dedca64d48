package main

import (
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"onewave/route-compass/internal/config"
	"onewave/route-compass/internal/models"
	"onewave/route-compass/internal/repositories"
)

// Seeds the sample success routes and a demo user so a fresh database can
// serve matching requests immediately. Safe to re-run: it skips seeding when
// routes already exist.
func main() {
	log.Println("🚀 Starting route seeding...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	routeRepo := repositories.NewRouteRepository(db)
	userRepo := repositories.NewUserRepository(db)

	count, err := routeRepo.Count()
	if err != nil {
		log.Fatalf("❌ Failed to count routes: %v", err)
	}
	if count > 0 {
		log.Printf("ℹ️  Routes already seeded (%d found), skipping\n", count)
		return
	}

	for _, route := range sampleRoutes() {
		route := route
		if err := routeRepo.Create(&route); err != nil {
			log.Fatalf("❌ Failed to seed route: %v", err)
		}
		log.Printf("✅ Seeded route %d (%s, %s)\n", route.ID, route.Job, route.FinalCompanySize)
	}

	if err := seedDemoUser(userRepo); err != nil {
		log.Fatalf("❌ Failed to seed demo user: %v", err)
	}

	log.Println("✅ Seeding completed")
}

func sampleRoutes() []models.Route {
	return []models.Route{
		{
			Job:              models.JobFrontend,
			Background:       models.BackgroundNonMajor,
			FinalCompanySize: models.SizeMidsize,
			Skills:           "react,javascript,css",
			Projects:         2,
			Summary:          "Non-CS degree -> 6 months self-study -> 2 portfolio projects -> SME offer -> moved to a midsize company",
			Steps: []models.RouteStep{
				{StepOrder: 1, Title: "Non-CS start", Description: "Business major, switched after discovering an interest in coding", Tips: "Logical thinking matters more than the degree"},
				{StepOrder: 2, Title: "Self-study", Duration: "3 months", Description: "HTML/CSS/JS basics through React, self-taught", Tips: "Read the official docs before paid courses"},
				{StepOrder: 3, Title: "Portfolio", Duration: "2 months", Description: "Finished two personal projects and cleaned up GitHub", Tips: "Projects that solve a real problem beat CRUD demos"},
				{StepOrder: 4, Title: "First job at an SME", Duration: "1 year", Description: "Frontend developer gaining production experience", Tips: "Pick growth environment over salary for the first job"},
				{StepOrder: 5, Title: "Midsize company offer", Description: "Landed a midsize company role on production experience plus portfolio"},
			},
		},
		{
			Job:              models.JobFrontend,
			Background:       models.BackgroundNonMajor,
			FinalCompanySize: models.SizeSME,
			Skills:           "react,nextjs",
			Projects:         1,
			Bootcamp:         true,
			Summary:          "Non-CS degree -> 3-month bootcamp -> 1 team project -> SME offer",
			Steps: []models.RouteStep{
				{StepOrder: 1, Title: "Bootcamp", Duration: "3 months", Description: "Frontend bootcamp with a team project", Tips: "Choose a bootcamp with hiring support"},
				{StepOrder: 2, Title: "Team project", Description: "Shipped one team project end to end"},
				{StepOrder: 3, Title: "SME offer", Description: "Hired as a junior frontend developer"},
			},
		},
		{
			Job:              models.JobFrontend,
			Background:       models.BackgroundMajor,
			FinalCompanySize: models.SizeEnterprise,
			Skills:           "react,typescript,nextjs",
			Projects:         4,
			Intern:           true,
			Awards:           true,
			Summary:          "CS degree -> 6-month internship -> 4 projects -> enterprise offer",
			Steps: []models.RouteStep{
				{StepOrder: 1, Title: "CS degree", Description: "Computer science major with solid fundamentals"},
				{StepOrder: 2, Title: "Internship", Duration: "6 months", Description: "Frontend internship at a product company"},
				{StepOrder: 3, Title: "Projects and awards", Description: "Four projects, one hackathon award"},
				{StepOrder: 4, Title: "Enterprise offer", Description: "Passed an enterprise hiring process"},
			},
		},
		{
			Job:              models.JobBackend,
			Background:       models.BackgroundNonMajor,
			FinalCompanySize: models.SizeStartup,
			Skills:           "java,spring",
			Projects:         3,
			Bootcamp:         true,
			Summary:          "Non-CS degree -> bootcamp -> 3 personal projects -> startup offer",
			Steps: []models.RouteStep{
				{StepOrder: 1, Title: "Bootcamp", Description: "Backend bootcamp focused on Java and Spring"},
				{StepOrder: 2, Title: "Personal projects", Description: "Built three personal backend projects"},
				{StepOrder: 3, Title: "Startup offer", Description: "Joined an early-stage startup"},
			},
		},
		{
			Job:              models.JobFrontend,
			Background:       models.BackgroundNonMajor,
			FinalCompanySize: models.SizeStartup,
			Skills:           "react,vue,typescript",
			Projects:         3,
			Bootcamp:         true,
			Summary:          "Non-CS degree -> bootcamp -> 3 team projects -> startup offer",
			Steps: []models.RouteStep{
				{StepOrder: 1, Title: "Bootcamp", Description: "Frontend bootcamp with several team projects"},
				{StepOrder: 2, Title: "Team projects", Description: "Three team projects across React and Vue"},
				{StepOrder: 3, Title: "Startup offer", Description: "Joined a startup as a frontend developer"},
			},
		},
	}
}

func seedDemoUser(userRepo repositories.UserRepository) error {
	exists, err := userRepo.ExistsByEmail("demo@routecompass.dev")
	if err != nil {
		return err
	}
	if exists {
		log.Println("ℹ️  Demo user already exists, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:                  uuid.New(),
		Email:               "demo@routecompass.dev",
		Password:            string(hash),
		Nickname:            "demo",
		OnboardingCompleted: true,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	if err := userRepo.Create(user); err != nil {
		return err
	}

	details := &models.UserDetails{
		UserID:       user.ID,
		Job:          models.JobFrontend,
		Background:   models.BackgroundNonMajor,
		CompanySizes: "STARTUP,SME",
		Skills:       "react,nextjs,typescript",
		Projects:     2,
		Bootcamp:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := userRepo.CreateDetails(details); err != nil {
		return err
	}

	log.Printf("✅ Seeded demo user %s\n", user.ID)
	return nil
}

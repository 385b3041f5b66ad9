package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"aijobradar/internal/model"
	"aijobradar/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		mongoDB = "aijobradar"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	courseRepo := repository.NewCourseRepo(client.Database(mongoDB))

	courses := []*model.Course{
		{
			ID:           "python-100-days",
			Title:        "100 Days of Code - The Complete Python Pro Bootcamp",
			Description:  "Master Python by building 100 projects in 100 days. Learn data science, automation, web development, and more.",
			AffiliateURL: "https://trk.udemy.com/nXDz1o",
			Category:     []string{"programming", "data"},
			Skills:       []string{"Python", "Data Analysis", "Automation", "Web Development"},
			Industries:   []string{"Technology & Software", "Finance & Banking", "Consulting", "Other"},
			Level:        "beginner",
			Rating:       4.7,
			Students:     "1.5M+",
		},
		{
			ID:           "machine-learning",
			Title:        "Machine Learning A-Z: AI, Python & R",
			Description:  "Learn to create Machine Learning algorithms in Python and R. Includes deep learning and AI fundamentals.",
			AffiliateURL: "https://trk.udemy.com/OeGJRz",
			Category:     []string{"ai", "data"},
			Skills:       []string{"Machine Learning", "Python", "Data Science", "AI"},
			Industries:   []string{"Technology & Software", "Finance & Banking", "Healthcare & Medical", "Consulting"},
			Level:        "intermediate",
			Rating:       4.5,
			Students:     "900K+",
		},
		{
			ID:           "chatgpt-guide",
			Title:        "ChatGPT Complete Guide: Learn Generative AI & Prompt Engineering",
			Description:  "Master ChatGPT, prompt engineering, and AI tools. Boost productivity and future-proof your career.",
			AffiliateURL: "https://trk.udemy.com/2an3rg",
			Category:     []string{"ai", "productivity"},
			Skills:       []string{"AI Prompt Engineering", "ChatGPT", "Automation", "Productivity"},
			Industries:   []string{"Technology & Software", "Marketing & Advertising", "Education", "Consulting", "Other"},
			Level:        "beginner",
			Rating:       4.6,
			Students:     "500K+",
		},
		{
			ID:           "excel-advanced",
			Title:        "Microsoft Excel - From Beginner to Advanced",
			Description:  "Master Excel with this comprehensive course. Learn formulas, pivot tables, macros, and data analysis.",
			AffiliateURL: "https://trk.udemy.com/RGJXya",
			Category:     []string{"productivity", "data"},
			Skills:       []string{"Microsoft Excel", "Data Analysis", "Reporting", "Automation"},
			Industries:   []string{"Finance & Banking", "Consulting", "Retail & E-commerce", "Manufacturing", "Other"},
			Level:        "beginner",
			Rating:       4.7,
			Students:     "1.2M+",
		},
		{
			ID:           "sql-bootcamp",
			Title:        "The Complete SQL Bootcamp: Go from Zero to Hero",
			Description:  "Become an expert at SQL. Learn PostgreSQL, data analysis, and database management.",
			AffiliateURL: "https://trk.udemy.com/yqG5Rv",
			Category:     []string{"programming", "data"},
			Skills:       []string{"SQL", "Data Analysis", "Database Management", "PostgreSQL"},
			Industries:   []string{"Technology & Software", "Finance & Banking", "Retail & E-commerce", "Healthcare & Medical"},
			Level:        "beginner",
			Rating:       4.7,
			Students:     "800K+",
		},
		{
			ID:           "digital-marketing",
			Title:        "The Complete Digital Marketing Course",
			Description:  "Master digital marketing: SEO, social media marketing, analytics, and more. 12 courses in 1.",
			AffiliateURL: "https://trk.udemy.com/mOxBgq",
			Category:     []string{"marketing"},
			Skills:       []string{"Digital Marketing", "SEO", "Social Media", "Analytics", "Content Marketing"},
			Industries:   []string{"Marketing & Advertising", "Retail & E-commerce", "Media & Entertainment", "Other"},
			Level:        "beginner",
			Rating:       4.5,
			Students:     "700K+",
		},
	}

	for _, course := range courses {
		if err := courseRepo.Upsert(ctx, course); err != nil {
			log.Fatalf("Failed to upsert course %s: %v", course.ID, err)
		}
	}

	fmt.Printf("Successfully seeded %d courses\n", len(courses))
}

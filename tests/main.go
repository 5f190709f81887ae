// Seed tool: wipes and repopulates the local database with a demo salon so
// the API can be exercised by hand. Not part of the server binary.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"salonflow/config"
	"salonflow/database"
	"salonflow/models"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.MongoClient.Database(database.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	for _, coll := range []string{"barbers", "services", "staff", "appointments", "blocks"} {
		if _, err := db.Collection(coll).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s collection: %v", coll, err)
		}
	}

	// Tuesday to Saturday, 10:00 to 19:00.
	var windows []models.WorkingWindow
	for wd := time.Tuesday; wd <= time.Saturday; wd++ {
		windows = append(windows, models.WorkingWindow{
			Weekday:     wd,
			StartMinute: 600,
			EndMinute:   1140,
			Active:      true,
		})
	}
	lunch := &models.LunchBreak{StartMinute: 720, EndMinute: 780, Active: true}

	barbers := []models.Barber{
		{ID: "barber-ana", FullName: "Ana Moreau", Active: true, WorkingWindows: windows, LunchBreak: lunch},
		{ID: "barber-leo", FullName: "Leo Fontaine", Active: true, WorkingWindows: windows, LunchBreak: lunch},
	}
	for _, b := range barbers {
		if _, err := db.Collection("barbers").InsertOne(ctx, b); err != nil {
			log.Fatalf("Failed to insert barber %s: %v", b.ID, err)
		}
	}

	services := []models.SalonService{
		{ID: "svc-cut", Name: "Cut", DurationMin: 30, BufferMin: 10, Price: 25, Active: true},
		{ID: "svc-colour", Name: "Colour", DurationMin: 60, BufferMin: 10, Price: 70, Active: true},
		{ID: "svc-shave", Name: "Shave", DurationMin: 20, BufferMin: 5, Price: 15, Active: true},
	}
	for _, s := range services {
		if _, err := db.Collection("services").InsertOne(ctx, s); err != nil {
			log.Fatalf("Failed to insert service %s: %v", s.ID, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("owner-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	owner := models.Staff{
		ID:           "staff-owner",
		FullName:     "Salon Owner",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		Role:         "owner",
		CreatedAt:    time.Now(),
	}
	if _, err := db.Collection("staff").InsertOne(ctx, owner); err != nil {
		log.Fatalf("Failed to insert owner: %v", err)
	}

	fmt.Printf("Seeded %d barbers, %d services and 1 owner account\n", len(barbers), len(services))
}

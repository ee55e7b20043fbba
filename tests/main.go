// Seed tool: populates the staff collection and a week of demo appointments.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"clinicsched/config"
	"clinicsched/database"
	"clinicsched/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	client := database.MongoClient
	db := client.Database(config.AppConfig.DatabaseName)
	staffColl := db.Collection("staff")
	apptColl := db.Collection("appointments")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing data.
	if _, err := staffColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear staff collection: %v", err)
	}
	if _, err := apptColl.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear appointments collection: %v", err)
	}

	names := []string{"Dr. Amara Osei", "Dr. Elena Vasquez", "Dr. Jonas Lindqvist", "Dr. Priya Nair"}
	labels := []string{"Hearing test", "Fitting", "Follow-up", "Tinnitus consult", "Ear impression"}

	hash, err := bcrypt.GenerateFromPassword([]byte("changeme123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	var staffIDs []string
	var staffDocs []interface{}
	for i, name := range names {
		id := uuid.New().String()
		staffIDs = append(staffIDs, id)
		staffDocs = append(staffDocs, models.Staff{
			ID:           id,
			DisplayName:  name,
			Email:        fmt.Sprintf("staff%d@clinic.example", i+1),
			PasswordHash: string(hash),
			Role:         "audiologist",
			CreatedAt:    time.Now(),
		})
	}
	if _, err := staffColl.InsertMany(ctx, staffDocs); err != nil {
		log.Fatalf("Failed to insert staff: %v", err)
	}

	// A week of appointments: a few per staff per day within working hours,
	// plus the occasional all-day block.
	durations := []int{30, 45, 60, 90}
	today := time.Now()
	var apptDocs []interface{}
	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		date := today.AddDate(0, 0, dayOffset).Format(models.DateLayout)
		for _, staffID := range staffIDs {
			start := 8 * 60 // first slot at 08:00
			for n := 0; n < 3+rand.Intn(3); n++ {
				dur := durations[rand.Intn(len(durations))]
				apptDocs = append(apptDocs, models.Appointment{
					ID:         uuid.New().String(),
					StaffID:    staffID,
					Date:       date,
					Start:      start,
					Duration:   dur,
					Label:      labels[rand.Intn(len(labels))],
					ClientName: fmt.Sprintf("Client %03d", rand.Intn(500)),
					Status:     models.StatusConfirmed,
					CreatedAt:  time.Now(),
				})
				// Leave a gap between consecutive appointments.
				start += dur + 15*rand.Intn(4)
				if start > 17*60 {
					break
				}
			}
			if rand.Intn(10) == 0 {
				apptDocs = append(apptDocs, models.Appointment{
					ID:        uuid.New().String(),
					StaffID:   staffID,
					Date:      date,
					Start:     0,
					Duration:  9 * 60, // over the full-day threshold
					Label:     "Out of office",
					Status:    models.StatusConfirmed,
					CreatedAt: time.Now(),
				})
			}
		}
	}
	if _, err := apptColl.InsertMany(ctx, apptDocs); err != nil {
		log.Fatalf("Failed to insert appointments: %v", err)
	}

	log.Printf("Seeded %d staff and %d appointments", len(staffIDs), len(apptDocs))
}

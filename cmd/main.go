package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/campuscore/api-fees/internal/auth"
	"github.com/campuscore/api-fees/internal/feecategory"
	"github.com/campuscore/api-fees/internal/feepayment"
	"github.com/campuscore/api-fees/internal/middleware"
	"github.com/campuscore/api-fees/internal/staff"
	"github.com/campuscore/api-fees/internal/student"
	"github.com/campuscore/api-fees/internal/studentfee"
	"github.com/campuscore/api-fees/internal/utils"
	"github.com/campuscore/api-fees/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Failed to connect to the database:", err)
	}

	// Migrations. The payment migration also seeds the receipt counter
	// from any pre-existing receipts.
	if err := staff.Migrate(database); err != nil {
		log.Fatal("Migration failed (staff):", err)
	}
	if err := student.Migrate(database); err != nil {
		log.Fatal("Migration failed (students):", err)
	}
	if err := feecategory.Migrate(database); err != nil {
		log.Fatal("Migration failed (fee categories):", err)
	}
	if err := studentfee.Migrate(database); err != nil {
		log.Fatal("Migration failed (student fees):", err)
	}
	if err := feepayment.Migrate(database); err != nil {
		log.Fatal("Migration failed (fee payments):", err)
	}

	if err := seedAdmin(database); err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}

	// Handlers
	categoryHandler := feecategory.NewHandler(feecategory.NewRepository(database))
	studentHandler := student.NewHandler(database)
	feeHandler := studentfee.NewHandler(studentfee.NewRepository(database))
	paymentHandler := feepayment.NewHandler(feepayment.NewRepository(database))

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger)

	r.HandleFunc("/login", auth.LoginHandler(database)).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware)

	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	// Fee catalog
	api.HandleFunc("/fee-categories", categoryHandler.List).Methods("GET")
	admin.HandleFunc("/fee-categories", categoryHandler.Create).Methods("POST")
	admin.HandleFunc("/fee-categories/{id}", categoryHandler.Update).Methods("PUT")
	admin.HandleFunc("/fee-categories/{id}/deactivate", categoryHandler.Deactivate).Methods("PATCH")

	// Students
	admin.HandleFunc("/students", studentHandler.Create).Methods("POST")
	api.HandleFunc("/students", studentHandler.List).Methods("GET")
	api.HandleFunc("/students/{id}", studentHandler.Get).Methods("GET")
	admin.HandleFunc("/students/{id}", studentHandler.Update).Methods("PUT")

	// Fee ledger
	admin.HandleFunc("/students/{id}/fees", feeHandler.Assign).Methods("POST")
	api.HandleFunc("/students/{id}/fees", feeHandler.ListByStudent).Methods("GET")
	api.HandleFunc("/fees", feeHandler.ListAll).Methods("GET")
	api.HandleFunc("/fees/pending", feeHandler.ListPending).Methods("GET")

	// Payments
	api.HandleFunc("/fees/{id}/payments", paymentHandler.Record).Methods("POST")
	api.HandleFunc("/fees/{id}/payments", paymentHandler.History).Methods("GET")
	api.HandleFunc("/payments", paymentHandler.Search).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Println("Server listening on http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// seedAdmin creates the first admin account from ADMIN_USERNAME /
// ADMIN_PASSWORD when the staff table is empty.
func seedAdmin(database *gorm.DB) error {
	repo := staff.NewRepository(database)
	n, err := repo.Count()
	if err != nil || n > 0 {
		return err
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Println("Staff table empty and ADMIN_USERNAME/ADMIN_PASSWORD unset; no admin seeded")
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	return repo.Create(&staff.Staff{
		Name:         "Administrator",
		Username:     username,
		PasswordHash: hash,
		IsAdmin:      true,
	})
}

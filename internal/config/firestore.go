package config

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// FirestoreClient متغیر برای دسترسی به Firestore
var FirestoreClient *firestore.Client

// InitFirestore اتصال به Firestore را راه‌اندازی می‌کند
func InitFirestore() {
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, os.Getenv("GOOGLE_CLOUD_PROJECT"))
	if err != nil {
		log.Fatal("Error connecting to Firestore:", err)
	}

	// بررسی اتصال پیش از پذیرش درخواست‌ها
	if _, err := client.Collections(ctx).Next(); err != nil && err != iterator.Done {
		log.Fatal("Error connecting to Firestore:", err)
	}

	FirestoreClient = client
	log.Println("Firestore connected")
}

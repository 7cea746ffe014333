// internal/output/mongodb.go
package output

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ozcomp/compintake/internal/extract"
	"github.com/ozcomp/compintake/internal/utils"
)

var mongoLogger = utils.NewComponentLogger("mongodb-output")

// MongoWriter persists records to a MongoDB collection.
type MongoWriter struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

// MongoOptions defines MongoDB-specific configuration.
type MongoOptions struct {
	ConnectionString string
	Database         string
	Collection       string
	Timeout          time.Duration
}

// NewMongoWriter creates a new MongoDB writer and verifies connectivity.
func NewMongoWriter(opts MongoOptions) (*MongoWriter, error) {
	if opts.ConnectionString == "" {
		return nil, fmt.Errorf("MongoDB connection string is required")
	}
	if opts.Database == "" {
		return nil, fmt.Errorf("MongoDB database name is required")
	}
	if opts.Collection == "" {
		opts.Collection = "competitions"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.ConnectionString))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoWriter{
		client:     client,
		collection: client.Database(opts.Database).Collection(opts.Collection),
		timeout:    opts.Timeout,
	}, nil
}

// Write inserts one document per record.
func (w *MongoWriter) Write(records []extract.Competition) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(records))
	for _, record := range records {
		docs = append(docs, toDocument(record))
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	result, err := w.collection.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("failed to insert records: %w", err)
	}
	mongoLogger.Debugf("inserted %d documents", len(result.InsertedIDs))
	return nil
}

// toDocument maps a record onto a BSON document with the same field names
// the tabular writers use, plus an insertion timestamp.
func toDocument(c extract.Competition) bson.M {
	return bson.M{
		"title":                     c.Title,
		"description":               c.Description,
		"start_date":                c.StartDate,
		"end_date":                  c.EndDate,
		"submission_deadline":       c.SubmissionDeadline,
		"draw_date":                 c.DrawDate,
		"prize_description":         c.PrizeDescription,
		"total_prize":               c.TotalPrize,
		"entry_criteria":            c.EntryCriteria,
		"participating_requirement": c.ParticipatingRequirement,
		"rules":                     c.Rules,
		"category":                  string(c.Category),
		"type_of_game":              string(c.TypeOfGame),
		"permit_number":             c.PermitNumber,
		"permits":                   c.Permits,
		"thumbnail_url":             c.ThumbnailURL,
		"organizer_name":            c.OrganizerName,
		"organizer_website":         c.OrganizerWebsite,
		"organizer_email":           c.OrganizerEmail,
		"terms_conditions_url":      c.TermsConditionsURL,
		"status":                    c.Status,
		"featured":                  c.Featured,
		"banner_url":                c.BannerURL,
		"issues":                    c.Issues,
		"created_at":                time.Now(),
	}
}

// Close disconnects from MongoDB.
func (w *MongoWriter) Close() error {
	if w.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	err := w.client.Disconnect(ctx)
	w.client = nil
	return err
}

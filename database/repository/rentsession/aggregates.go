package rentsessionRepo

import (
	"context"
	"fmt"
	"time"

	"medonrent/models"

	"go.mongodb.org/mongo-driver/bson"
)

// FinancialTotalsSince sums billing figures over non-deleted sessions
// created at or after the given instant.
func (r *MongoRentSessionRepo) FinancialTotalsSince(ctx context.Context, since time.Time) (*models.FinancialTotals, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"isDeleted":            false,
				"createdAt":            bson.M{"$gte": since},
				"billing.totalCharges": bson.M{"$exists": true},
			},
		},
		{
			"$group": bson.M{
				"_id":           nil,
				"totalCharges":  bson.M{"$sum": "$billing.totalCharges"},
				"totalDiscount": bson.M{"$sum": bson.M{"$ifNull": []interface{}{"$billing.discountAmount", 0}}},
				"totalGST":      bson.M{"$sum": bson.M{"$ifNull": []interface{}{"$billing.gst", 0}}},
				"totalDoctorCommission": bson.M{
					"$sum": bson.M{"$ifNull": []interface{}{"$billing.doctorCommission", 0}},
				},
				"count": bson.M{"$sum": 1},
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating financial totals: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.FinancialTotals
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding financial totals: %w", err)
	}
	if len(results) == 0 {
		return &models.FinancialTotals{}, nil
	}
	return &results[0], nil
}

// PaymentBreakdown groups non-deleted sessions by billing payment status.
func (r *MongoRentSessionRepo) PaymentBreakdown(ctx context.Context) ([]models.PaymentStatusGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := []bson.M{
		{
			"$match": bson.M{
				"isDeleted":             false,
				"billing.paymentStatus": bson.M{"$exists": true},
			},
		},
		{
			"$group": bson.M{
				"_id":         "$billing.paymentStatus",
				"count":       bson.M{"$sum": 1},
				"totalAmount": bson.M{"$sum": bson.M{"$ifNull": []interface{}{"$billing.totalCharges", 0}}},
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating payment breakdown: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []models.PaymentStatusGroup
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("error decoding payment breakdown: %w", err)
	}
	return groups, nil
}

package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection(collectionReviews)}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, rv)
	if err != nil {
		return nil, errors.Wrapf(err, "insert review for %s", rv.ProductID)
	}
	return toInsertResult(res), nil
}

func (r *ReviewRepository) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"productId": productID}, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "list reviews for %s", productID)
	}
	out := []domain.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode reviews")
	}
	return out, nil
}

func (r *ReviewRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count reviews")
	}
	return n, nil
}

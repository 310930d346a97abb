package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// SpotlightRepository stores featured entries keyed by an opaque string id.
type SpotlightRepository struct {
	col *mongo.Collection
}

func NewSpotlightRepository(db *mongo.Database) *SpotlightRepository {
	return &SpotlightRepository{col: db.Collection(collectionFeatured)}
}

func (r *SpotlightRepository) Create(ctx context.Context, s *domain.Spotlight) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, s)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSpotlightExists
		}
		return nil, errors.Wrapf(err, "insert spotlight %s", s.ID)
	}
	return toInsertResult(res), nil
}

func (r *SpotlightRepository) List(ctx context.Context) ([]domain.Spotlight, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "featuredAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, errors.Wrap(err, "list spotlights")
	}
	out := []domain.Spotlight{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode spotlights")
	}
	return out, nil
}

func (r *SpotlightRepository) Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error) {
	return upvote(ctx, r.col, id, voter, domain.ErrSpotlightNotFound)
}

func (r *SpotlightRepository) Upsert(ctx context.Context, id string, u domain.SpotlightUpdate) (*domain.UpdateResult, error) {
	set, err := setDocument(u)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": set}
	if onInsert := insertDefaults(set, bson.M{
		"upvotes":      0,
		"upVotedUsers": bson.A{},
		"tags":         bson.A{},
	}); len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, errors.Wrapf(err, "upsert spotlight %s", id)
	}
	return toUpdateResult(res), nil
}

func (r *SpotlightRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, errors.Wrapf(err, "delete spotlight %s", id)
	}
	return toDeleteResult(res), nil
}

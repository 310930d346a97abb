package mongo

import (
	"context"
	"regexp"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type ListingRepository struct {
	col *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{col: db.Collection(collectionProducts)}
}

// Create inserts a listing; the server assigns the ObjectID.
func (r *ListingRepository) Create(ctx context.Context, l *domain.Listing) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, l)
	if err != nil {
		return nil, errors.Wrap(err, "insert listing")
	}
	return toInsertResult(res), nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var l domain.Listing
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, errors.Wrapf(err, "find listing %s", id)
	}
	return &l, nil
}

func listingQuery(f ports.ListingFilter) bson.M {
	q := bson.M{}
	if f.Status != "" {
		q["status"] = string(f.Status)
	}
	if f.Reported {
		q["reported"] = true
	}
	if f.OwnerEmail != "" {
		q["owner.email"] = f.OwnerEmail
	}
	if f.Search != "" {
		q["tags"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	return q
}

func listingSort(f ports.ListingFilter) bson.D {
	if f.ByUpvotes {
		return bson.D{{Key: "upvotes", Value: -1}, {Key: "_id", Value: 1}}
	}
	return bson.D{{Key: "_id", Value: 1}}
}

func (r *ListingRepository) Find(ctx context.Context, f ports.ListingFilter) ([]domain.Listing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, listingQuery(f), options.Find().SetSort(listingSort(f)))
	if err != nil {
		return nil, errors.Wrap(err, "find listings")
	}
	out := []domain.Listing{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode listings")
	}
	return out, nil
}

// Page runs the page query and the count as two round trips.
func (r *ListingRepository) Page(ctx context.Context, f ports.ListingFilter, page, limit int) ([]domain.Listing, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := listingQuery(f)
	opts := options.Find().
		SetSort(listingSort(f)).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, errors.Wrap(err, "page listings")
	}
	out := []domain.Listing{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, errors.Wrap(err, "decode listings")
	}

	total, err := r.col.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count listings")
	}
	return out, total, nil
}

func (r *ListingRepository) SetStatus(ctx context.Context, id string, status domain.ListingStatus) (*domain.UpdateResult, error) {
	return r.set(ctx, id, bson.M{"status": string(status)})
}

func (r *ListingRepository) MarkReported(ctx context.Context, id string) (*domain.UpdateResult, error) {
	return r.set(ctx, id, bson.M{"reported": true})
}

func (r *ListingRepository) MarkFeatured(ctx context.Context, id string) (*domain.UpdateResult, error) {
	return r.set(ctx, id, bson.M{"featured": true})
}

func (r *ListingRepository) set(ctx context.Context, id string, set bson.M) (*domain.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, errors.Wrapf(err, "update listing %s", id)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrListingNotFound
	}
	return toUpdateResult(res), nil
}

func (r *ListingRepository) Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return upvote(ctx, r.col, oid, voter, domain.ErrListingNotFound)
}

// Upsert overwrites the descriptive fields, creating the listing when absent.
// A created listing starts Pending with empty upvote bookkeeping.
func (r *ListingRepository) Upsert(ctx context.Context, id string, u domain.ListingUpdate) (*domain.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set, err := setDocument(u)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": set}
	if onInsert := insertDefaults(set, bson.M{
		"status":       string(domain.StatusPending),
		"reported":     false,
		"featured":     false,
		"upvotes":      0,
		"upVotedUsers": bson.A{},
		"tags":         bson.A{},
	}); len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update, options.Update().SetUpsert(true))
	if err != nil {
		return nil, errors.Wrapf(err, "upsert listing %s", id)
	}
	return toUpdateResult(res), nil
}

// Delete is idempotent; DeletedCount is zero when the listing was absent.
func (r *ListingRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Wrapf(err, "delete listing %s", id)
	}
	return toDeleteResult(res), nil
}

func (r *ListingRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count listings")
	}
	return n, nil
}

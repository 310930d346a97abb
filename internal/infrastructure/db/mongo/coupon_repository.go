package mongo

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type CouponRepository struct {
	col *mongo.Collection
}

func NewCouponRepository(db *mongo.Database) *CouponRepository {
	return &CouponRepository{col: db.Collection(collectionCoupons)}
}

func (r *CouponRepository) Create(ctx context.Context, c *domain.Coupon) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, c)
	if err != nil {
		return nil, errors.Wrapf(err, "insert coupon %s", c.CouponCode)
	}
	return toInsertResult(res), nil
}

func (r *CouponRepository) List(ctx context.Context) ([]domain.Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "list coupons")
	}
	out := []domain.Coupon{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(err, "decode coupons")
	}
	return out, nil
}

func (r *CouponRepository) Upsert(ctx context.Context, id string, u domain.CouponUpdate) (*domain.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	set, err := setDocument(u)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, options.Update().SetUpsert(true))
	if err != nil {
		return nil, errors.Wrapf(err, "upsert coupon %s", id)
	}
	return toUpdateResult(res), nil
}

func (r *CouponRepository) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, errors.Wrapf(err, "delete coupon %s", id)
	}
	return toDeleteResult(res), nil
}

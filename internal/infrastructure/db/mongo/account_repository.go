package mongo

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type AccountRepository struct {
	col *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{col: db.Collection(collectionUsers)}
}

type accountDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name,omitempty"`
	Email        string             `bson:"email"`
	Photo        string             `bson:"photo,omitempty"`
	PasswordHash string             `bson:"passwordHash,omitempty"`
	Role         string             `bson:"role"`
	Subscribed   bool               `bson:"subscribed"`
	CreatedAt    time.Time          `bson:"createdAt,omitempty"`
}

func (d accountDoc) toDomain() domain.Account {
	return domain.Account{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Photo:        d.Photo,
		PasswordHash: d.PasswordHash,
		Role:         domain.Role(d.Role),
		Subscribed:   d.Subscribed,
		CreatedAt:    d.CreatedAt,
	}
}

// Create inserts an account. The unique email index turns a concurrent
// duplicate into domain.ErrAccountExists.
func (r *AccountRepository) Create(ctx context.Context, a *domain.Account) (*domain.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := accountDoc{
		Name:         a.Name,
		Email:        a.Email,
		Photo:        a.Photo,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		Subscribed:   a.Subscribed,
		CreatedAt:    a.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, errors.Wrapf(err, "insert account %s", a.Email)
	}
	return toInsertResult(res), nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc accountDoc
	if err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, errors.Wrapf(err, "find account %s", email)
	}
	a := doc.toDomain()
	return &a, nil
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "list accounts")
	}
	var docs []accountDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "decode accounts")
	}

	out := make([]domain.Account, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *AccountRepository) SetSubscribed(ctx context.Context, id string) (*domain.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.update(ctx, bson.M{"_id": oid}, bson.M{"subscribed": true})
}

func (r *AccountRepository) SetRole(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	return r.update(ctx, bson.M{"_id": oid}, bson.M{"role": string(role)})
}

func (r *AccountRepository) SetRoleByEmail(ctx context.Context, email string, role domain.Role) (*domain.UpdateResult, error) {
	return r.update(ctx, bson.M{"email": email}, bson.M{"role": string(role)})
}

func (r *AccountRepository) update(ctx context.Context, filter, set bson.M) (*domain.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, errors.Wrap(err, "update account")
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return toUpdateResult(res), nil
}

// Count scans the collection rather than trusting its metadata.
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, errors.Wrap(err, "count accounts")
	}
	return n, nil
}

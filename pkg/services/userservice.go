package services

import (
	"context"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tranhart-io/api/internal/auth"
	"tranhart-io/api/pkg/models"
	"tranhart-io/api/pkg/util"
)

// ErrInvalidCredentials covers both unknown emails and wrong passwords so
// the login response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserService defines the operations the auth surface needs.
type UserService interface {
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	AuthenticateUser(ctx context.Context, req models.UserLoginBody) (*models.User, error)
	AuthenticateGoogleUser(ctx context.Context, idToken string) (*models.User, error)
	SeedAdmin(ctx context.Context, name, email, password string) error
}

type userService struct {
	userCollection *mongo.Collection
}

func NewUserService() UserService {
	return &userService{
		userCollection: util.GetCollection(util.DB, "User"),
	}
}

func (s *userService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.userCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks the submitted password against the stored
// bcrypt digest. The returned user never carries the digest over JSON.
func (s *userService) AuthenticateUser(ctx context.Context, req models.UserLoginBody) (*models.User, error) {
	var user models.User
	if err := s.userCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordDigest, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// AuthenticateGoogleUser verifies a Google ID token and resolves the
// matching local account by email. Accounts are provisioned manually, so
// an unknown email is rejected rather than created.
func (s *userService) AuthenticateGoogleUser(ctx context.Context, idToken string) (*models.User, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	clientID := util.LoadEnvFor("GOOGLE_CLIENT_ID")
	if err := v.VerifyIDToken(idToken, []string{clientID}); err != nil {
		return nil, err
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.userCollection.FindOne(ctx, bson.M{"email": claimSet.Email}).Decode(&user); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

// SeedAdmin upserts the bootstrap admin account. An existing account is
// left untouched so a redeploy never resets a changed password.
func (s *userService) SeedAdmin(ctx context.Context, name, email, password string) error {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	update := bson.M{
		"$setOnInsert": models.User{
			ID:             primitive.NewObjectID(),
			Name:           name,
			Email:          email,
			PasswordDigest: digest,
			Role:           models.RoleAdmin,
			IsActive:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err = s.userCollection.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	return err
}

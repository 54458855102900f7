package record

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps every student record in a single "students" collection.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("students")}
}

// EnsureIndexes creates the unique indexes on rollNumber and
// registrationNumber. The pre-write duplicate checks in the service are
// read-then-compare and race-prone; these indexes are the real safety net.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "rollNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "registrationNumber", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create student indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Insert(ctx context.Context, student *Student) error {
	if student.ID.IsZero() {
		student.ID = primitive.NewObjectID()
	}
	_, err := s.col.InsertOne(ctx, student)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return NewConflictError("roll number or registration number already exists")
		}
		return fmt.Errorf("failed to insert student: %w", err)
	}
	return nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (*Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, NewNotFoundError("student not found")
	}
	return s.findOne(ctx, bson.M{"_id": oid})
}

func (s *MongoStore) FindByRoll(ctx context.Context, roll int64) (*Student, error) {
	return s.findOne(ctx, bson.M{"rollNumber": roll})
}

func (s *MongoStore) FindByRegistration(ctx context.Context, registration string) (*Student, error) {
	return s.findOne(ctx, bson.M{"registrationNumber": registration})
}

func (s *MongoStore) FindByStandard(ctx context.Context, standard int) (*Student, error) {
	return s.findOne(ctx, bson.M{"standard": standard})
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.M) (*Student, error) {
	var student Student
	err := s.col.FindOne(ctx, filter).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, NewNotFoundError("student not found")
		}
		return nil, fmt.Errorf("failed to query student: %w", err)
	}
	return &student, nil
}

func (s *MongoStore) FindAll(ctx context.Context) ([]*Student, error) {
	return s.findAll(ctx, nil)
}

func (s *MongoStore) FindAllProjected(ctx context.Context, fields ...string) ([]*Student, error) {
	projection := bson.D{}
	for _, f := range fields {
		projection = append(projection, bson.E{Key: f, Value: 1})
	}
	return s.findAll(ctx, options.Find().SetProjection(projection))
}

func (s *MongoStore) findAll(ctx context.Context, opts *options.FindOptions) ([]*Student, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = s.col.Find(ctx, bson.M{}, opts)
	} else {
		cursor, err = s.col.Find(ctx, bson.M{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query students: %w", err)
	}
	defer cursor.Close(ctx)

	students := []*Student{}
	for cursor.Next(ctx) {
		var student Student
		if err := cursor.Decode(&student); err != nil {
			return nil, fmt.Errorf("failed to decode student: %w", err)
		}
		students = append(students, &student)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate students: %w", err)
	}
	return students, nil
}

func (s *MongoStore) Save(ctx context.Context, student *Student) error {
	student.UpdatedAt = time.Now()
	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": student.ID}, student, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return NewConflictError("roll number or registration number already exists")
		}
		return fmt.Errorf("failed to save student: %w", err)
	}
	return nil
}

func (s *MongoStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return NewNotFoundError("student not found")
	}

	result, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if result.DeletedCount == 0 {
		return NewNotFoundError("student not found")
	}
	return nil
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

func (s *MongoStore) GetOrCreateByStandard(ctx context.Context, standard int, subject string) (*Student, error) {
	student, err := s.FindByStandard(ctx, standard)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return NewPlaceholderForStandard(standard, subject), nil
		}
		return nil, err
	}
	return student, nil
}

func (s *MongoStore) GetOrCreateByRoll(ctx context.Context, roll int64, standard int) (*Student, error) {
	student, err := s.FindByRoll(ctx, roll)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			return NewPlaceholderForRoll(roll, standard), nil
		}
		return nil, err
	}
	return student, nil
}

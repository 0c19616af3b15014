package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/campuskit/school-admin-api/internal/core/domain"
)

const classroomsCollection = "classrooms"

// ClassroomRepository implements ports.ClassroomRepository.
type ClassroomRepository struct {
	coll *mongo.Collection
}

func NewClassroomRepository(db *mongo.Database) *ClassroomRepository {
	return &ClassroomRepository{coll: db.Collection(classroomsCollection)}
}

type mongoClassroom struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	AssignedTeacher string             `bson:"assigned_teacher,omitempty"`
	StartTime       string             `bson:"start_time"`
	EndTime         string             `bson:"end_time"`
	Days            string             `bson:"days"`
	CreatedAt       int64              `bson:"created_at"`
}

func (r *ClassroomRepository) Create(ctx context.Context, classroom *domain.Classroom) (*domain.Classroom, error) {
	doc := mongoClassroom{
		Name:            classroom.Name,
		AssignedTeacher: classroom.AssignedTeacher,
		StartTime:       classroom.StartTime,
		EndTime:         classroom.EndTime,
		Days:            classroom.Days,
		CreatedAt:       classroom.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrClassroomExists
		}
		return nil, fmt.Errorf("insert classroom: %w", err)
	}

	created := *classroom
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ClassroomRepository) FindByName(ctx context.Context, name string) (*domain.Classroom, error) {
	var mc mongoClassroom
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("find classroom: %w", err)
	}
	return mc.toDomain(), nil
}

// FindByAssignedTeacher matches on the assigned_teacher name string. The
// relation is by value, so a stale name (e.g. after a teacher rename) simply
// never matches.
func (r *ClassroomRepository) FindByAssignedTeacher(ctx context.Context, teacherName string) (*domain.Classroom, error) {
	var mc mongoClassroom
	if err := r.coll.FindOne(ctx, bson.M{"assigned_teacher": teacherName}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoClassroomAssigned
		}
		return nil, fmt.Errorf("find classroom by teacher: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *ClassroomRepository) List(ctx context.Context) ([]*domain.Classroom, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	defer cur.Close(ctx)

	classrooms := make([]*domain.Classroom, 0)
	for cur.Next(ctx) {
		var mc mongoClassroom
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode classroom: %w", err)
		}
		classrooms = append(classrooms, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list classrooms: %w", err)
	}
	return classrooms, nil
}

func (r *ClassroomRepository) SetAssignedTeacher(ctx context.Context, classroomName, teacherName string) (*domain.Classroom, error) {
	var mc mongoClassroom
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"name": classroomName},
		bson.M{"$set": bson.M{"assigned_teacher": teacherName}},
		opts,
	).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClassroomNotFound
		}
		return nil, fmt.Errorf("assign teacher: %w", err)
	}
	return mc.toDomain(), nil
}

// EnsureIndexes creates the unique classroom name index.
func (r *ClassroomRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "assigned_teacher", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func (mc *mongoClassroom) toDomain() *domain.Classroom {
	return &domain.Classroom{
		ID:              mc.ID.Hex(),
		Name:            mc.Name,
		AssignedTeacher: mc.AssignedTeacher,
		StartTime:       mc.StartTime,
		EndTime:         mc.EndTime,
		Days:            mc.Days,
		CreatedAt:       unixToTime(mc.CreatedAt),
	}
}

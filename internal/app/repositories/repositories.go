package repositories

import (
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository    *AdminRepository
	StudentRepository  *StudentRepository
	AlumniRepository   *AlumniRepository
	PersonRepository   *PersonRepository
	PostRepository     *PostRepository
	TrainingRepository *TrainingRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *mongo.Database) *Repositories {
	return &Repositories{
		AdminRepository:    NewAdminRepository(database),
		StudentRepository:  NewStudentRepository(database),
		AlumniRepository:   NewAlumniRepository(database),
		PersonRepository:   NewPersonRepository(database),
		PostRepository:     NewPostRepository(database),
		TrainingRepository: NewTrainingRepository(database),
	}
}

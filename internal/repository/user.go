package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/deppfellow/sqlite-api/internal/database"
	"github.com/deppfellow/sqlite-api/internal/model"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "email", "age"}

// UserRepository runs the CRUD statements of the users table.
type UserRepository struct {
	db *database.Database
}

func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// List returns every user ordered by id. The result is never nil.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query, args, err := sq.Select(userColumns...).
		From(usersTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building list users query: %w", err)
	}

	users := []model.User{}
	err = r.db.SelectContext(ctx, &users, database.Query{
		Operation:  "SELECT",
		Collection: usersTable,
		SQL:        query,
		Args:       args,
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

// GetByID returns the user with id, or sql.ErrNoRows.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query, args, err := sq.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building get user query: %w", err)
	}

	var u model.User
	err = r.db.GetContext(ctx, &u, database.Query{
		Operation:  "SELECT",
		Collection: usersTable,
		SQL:        query,
		Args:       args,
	})
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// Create inserts a row and returns it with the id the engine assigned.
func (r *UserRepository) Create(ctx context.Context, name, email string, age int64) (*model.User, error) {
	query, args, err := sq.Insert(usersTable).
		Columns("name", "email", "age").
		Values(name, email, age).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert user query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, database.Query{
		Operation:  "INSERT",
		Collection: usersTable,
		SQL:        query,
		Args:       args,
	})
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &model.User{
		ID:    id,
		Name:  name,
		Email: email,
		Age:   age,
	}, nil
}

// Update replaces name, email and age of the row with id and reports how
// many rows changed (0 or 1).
func (r *UserRepository) Update(ctx context.Context, id int64, name, email string, age int64) (int64, error) {
	query, args, err := sq.Update(usersTable).
		Set("name", name).
		Set("email", email).
		Set("age", age).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building update user query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, database.Query{
		Operation:  "UPDATE",
		Collection: usersTable,
		SQL:        query,
		Args:       args,
	})
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

// Delete removes the row with id and reports how many rows changed.
func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query, args, err := sq.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building delete user query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, database.Query{
		Operation:  "DELETE",
		Collection: usersTable,
		SQL:        query,
		Args:       args,
	})
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

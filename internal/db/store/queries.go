package store

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries runs the question bank SQL against a pgx connection.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Category struct {
	ID   int32  `db:"id"`
	Type string `db:"type"`
}

type Question struct {
	ID         int32  `db:"id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Category   int32  `db:"category"`
	Difficulty int32  `db:"difficulty"`
}

type InsertQuestionParams struct {
	Question   string
	Answer     string
	Category   int32
	Difficulty int32
}

const listCategories = `SELECT id, type FROM categories ORDER BY id`

func (q *Queries) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := q.db.Query(ctx, listCategories)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Category])
}

const getCategory = `SELECT id, type FROM categories WHERE id = $1`

func (q *Queries) GetCategory(ctx context.Context, id int32) (Category, error) {
	rows, err := q.db.Query(ctx, getCategory, id)
	if err != nil {
		return Category{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Category])
}

// Orphaned rows are dropped by the join so scans never surface dangling category references.
const listQuestions = `
SELECT q.id, q.question, q.answer, q.category, q.difficulty
FROM questions q
JOIN categories c ON c.id = q.category
ORDER BY q.id`

func (q *Queries) ListQuestions(ctx context.Context) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestions)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

const listQuestionsByCategory = `
SELECT q.id, q.question, q.answer, q.category, q.difficulty
FROM questions q
JOIN categories c ON c.id = q.category
WHERE q.category = $1
ORDER BY q.id`

func (q *Queries) ListQuestionsByCategory(ctx context.Context, categoryID int32) ([]Question, error) {
	rows, err := q.db.Query(ctx, listQuestionsByCategory, categoryID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

const searchQuestions = `
SELECT q.id, q.question, q.answer, q.category, q.difficulty
FROM questions q
JOIN categories c ON c.id = q.category
WHERE q.question ILIKE $1 ESCAPE '\'
ORDER BY q.id`

// SearchQuestions matches term as a literal, case-insensitive substring of the question text.
func (q *Queries) SearchQuestions(ctx context.Context, term string) ([]Question, error) {
	rows, err := q.db.Query(ctx, searchQuestions, "%"+EscapeLike(term)+"%")
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Question])
}

const countQuestions = `
SELECT count(*)
FROM questions q
JOIN categories c ON c.id = q.category`

func (q *Queries) CountQuestions(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, countQuestions).Scan(&n)
	return n, err
}

const getQuestion = `SELECT id, question, answer, category, difficulty FROM questions WHERE id = $1`

func (q *Queries) GetQuestion(ctx context.Context, id int32) (Question, error) {
	rows, err := q.db.Query(ctx, getQuestion, id)
	if err != nil {
		return Question{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Question])
}

const insertQuestion = `
INSERT INTO questions (question, answer, category, difficulty)
VALUES ($1, $2, $3, $4)
RETURNING id, question, answer, category, difficulty`

func (q *Queries) InsertQuestion(ctx context.Context, arg InsertQuestionParams) (Question, error) {
	rows, err := q.db.Query(ctx, insertQuestion, arg.Question, arg.Answer, arg.Category, arg.Difficulty)
	if err != nil {
		return Question{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Question])
}

const deleteQuestion = `DELETE FROM questions WHERE id = $1`

// DeleteQuestion reports the number of rows removed; zero means another caller got there first.
func (q *Queries) DeleteQuestion(ctx context.Context, id int32) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteQuestion, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike neutralises LIKE wildcards in user input.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

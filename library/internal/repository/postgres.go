package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/librarypro/library/internal/errs"
	"github.com/Astemirdum/librarypro/library/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

var _ Repository = (*repository)(nil)

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName        = `books`
	reviewsTableName      = `reviews`
	membersTableName      = `members`
	readingStatsTableName = `reading_stats`
	borrowTableName       = `borrow_records`
	favoritesTableName    = `favorites`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookColumns = []string{
	"id", "title", "author", "genre", "year", "rating", "available", "total",
	"description", "isbn", "publisher", "pages", "language", "summary",
}

var borrowColumns = []string{
	"br.id", "br.username", "br.book_id", "b.title", "b.author",
	"br.borrow_date", "br.due_date", "br.returned_at", "br.renewals_left",
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListBooks")
	}
	return books, nil
}

func (r *repository) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrBookNotFound
		}
		r.log.Error("GetBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, errors.Wrap(err, "GetBook")
	}
	return book, nil
}

func (r *repository) bookExists(ctx context.Context, q sqlx.QueryerContext, bookID string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, q, &exists, `select exists(select 1 from books where id = $1)`, bookID)
	return exists, err
}

func (r *repository) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	exists, err := r.bookExists(ctx, r.db, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "ListReviews")
	}
	if !exists {
		return nil, errs.ErrBookNotFound
	}

	query, args, err := qb.Select("id", "book_id", "user_name", "rating", "comment", "created_at").
		From(reviewsTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}
	var reviews []model.Review
	if err := r.db.SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListReviews")
	}
	return reviews, nil
}

func (r *repository) AddReview(ctx context.Context, review model.Review) error {
	query, args, err := qb.Insert(reviewsTableName).
		Columns("id", "book_id", "user_name", "rating", "comment", "created_at").
		Values(review.ID, review.BookID, review.User, review.Rating, review.Comment, review.Date).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isPgError(err, pgerrcode.ForeignKeyViolation) {
			return errs.ErrBookNotFound
		}
		return errors.Wrap(err, "AddReview")
	}
	return nil
}

func (r *repository) Reserve(ctx context.Context, rec model.BorrowRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := takeCopyQuery(rec.BookID)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "Reserve decrement")
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		exists, err := r.bookExists(ctx, tx, rec.BookID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.ErrBookNotFound
		}
		return errs.ErrUnavailable
	}

	query, args, err = qb.Insert(borrowTableName).
		Columns("id", "username", "book_id", "borrow_date", "due_date", "renewals_left").
		Values(rec.ID, rec.MemberID, rec.BookID, rec.BorrowDate, rec.DueDate, rec.RenewalsLeft).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("Reserve", zap.String("q", query), zap.Any("args", args))
		return errors.Wrap(err, "Reserve insert")
	}
	return tx.Commit()
}

func (r *repository) ListBorrowRecords(ctx context.Context, memberID string) ([]model.BorrowRecord, error) {
	query, args, err := qb.Select(borrowColumns...).
		From(borrowTableName + " br").
		Join(booksTableName + " b on b.id = br.book_id").
		Where(sq.Eq{"br.username": memberID}).
		OrderBy("br.borrow_date desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBorrowRecords", zap.String("query", query), zap.Any("args", args))

	var recs []model.BorrowRecord
	if err := r.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListBorrowRecords")
	}
	return recs, nil
}

func (r *repository) UpdateBorrowRecord(ctx context.Context, memberID, recordID string, fn UpdateFunc) (model.BorrowRecord, error) {
	return r.update(ctx, memberID, recordID, fn, false)
}

func (r *repository) ReturnBorrowRecord(ctx context.Context, memberID, recordID string, fn UpdateFunc) (model.BorrowRecord, error) {
	return r.update(ctx, memberID, recordID, fn, true)
}

func (r *repository) update(ctx context.Context, memberID, recordID string, fn UpdateFunc, giveBack bool) (model.BorrowRecord, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	query, args, err := lockBorrowRecordQuery(memberID, recordID)
	if err != nil {
		return model.BorrowRecord{}, err
	}
	var rec model.BorrowRecord
	if err := tx.GetContext(ctx, &rec, query, args...); err != nil {
		return model.BorrowRecord{}, borrowRecordLookupFailed(err)
	}

	orig := rec
	if err := fn(&rec); err != nil {
		return orig, err
	}

	query, args, err = qb.Update(borrowTableName).
		Set("due_date", rec.DueDate).
		Set("returned_at", rec.ReturnedAt).
		Set("renewals_left", rec.RenewalsLeft).
		Where(sq.Eq{"id": rec.ID}).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return model.BorrowRecord{}, errors.Wrap(err, "update borrow record")
	}

	if giveBack {
		query, args, err = giveCopyBackQuery(rec.BookID)
		if err != nil {
			return model.BorrowRecord{}, err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return model.BorrowRecord{}, errors.Wrap(err, "return copy")
		}
	}
	if err := tx.Commit(); err != nil {
		return model.BorrowRecord{}, err
	}
	return rec, nil
}

func (r *repository) ToggleFavorite(ctx context.Context, memberID, bookID string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback() //nolint:errcheck

	exists, err := r.bookExists(ctx, tx, bookID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, errs.ErrBookNotFound
	}

	res, err := tx.ExecContext(ctx,
		`delete from favorites where username = $1 and book_id = $2`, memberID, bookID)
	if err != nil {
		return false, errors.Wrap(err, "delete favorite")
	}
	if n, err := res.RowsAffected(); err != nil {
		return false, err
	} else if n > 0 {
		return false, tx.Commit()
	}

	query, args, err := qb.Insert(favoritesTableName).
		Columns("username", "book_id").
		Values(memberID, bookID).
		ToSql()
	if err != nil {
		return false, err
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return favoriteInsertFailed(err)
	}
	return true, tx.Commit()
}

func (r *repository) ListFavorites(ctx context.Context, memberID string) ([]model.Favorite, error) {
	query, args, err := qb.Select("f.username", "b.id as book_id", "b.title", "b.author", "b.genre", "b.rating").
		From(favoritesTableName + " f").
		Join(booksTableName + " b on b.id = f.book_id").
		Where(sq.Eq{"f.username": memberID}).
		OrderBy("f.created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var favs []model.Favorite
	if err := r.db.SelectContext(ctx, &favs, query, args...); err != nil {
		return nil, errors.Wrap(err, "ListFavorites")
	}
	return favs, nil
}

func (r *repository) GetMember(ctx context.Context, memberID string) (model.Member, error) {
	query, args, err := qb.Select("username", "name", "email", "membership_type", "join_date", "member_id").
		From(membersTableName).
		Where(sq.Eq{"username": memberID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}
	var m model.Member
	if err := r.db.GetContext(ctx, &m, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrMemberNotFound
		}
		return model.Member{}, errors.Wrap(err, "GetMember")
	}
	return m, nil
}

func (r *repository) GetReadingStats(ctx context.Context, memberID string) (model.ReadingStats, error) {
	query, args, err := qb.Select("books_read", "books_this_month", "current_streak", "favorite_genre", "total_pages", "avg_rating").
		From(readingStatsTableName).
		Where(sq.Eq{"username": memberID}).
		ToSql()
	if err != nil {
		return model.ReadingStats{}, err
	}
	var st model.ReadingStats
	if err := r.db.GetContext(ctx, &st, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReadingStats{}, nil
		}
		return model.ReadingStats{}, errors.Wrap(err, "GetReadingStats")
	}
	return st, nil
}

// takeCopyQuery decrements available only while a copy is left.
func takeCopyQuery(bookID string) (string, []interface{}, error) {
	return qb.Update(booksTableName).
		Set("available", sq.Expr("available - 1")).
		Where(sq.Eq{"id": bookID}).
		Where(sq.Gt{"available": 0}).
		ToSql()
}

// giveCopyBackQuery never raises available above total.
func giveCopyBackQuery(bookID string) (string, []interface{}, error) {
	return qb.Update(booksTableName).
		Set("available", sq.Expr("least(available + 1, total)")).
		Where(sq.Eq{"id": bookID}).
		ToSql()
}

func lockBorrowRecordQuery(memberID, recordID string) (string, []interface{}, error) {
	return qb.Select(borrowColumns...).
		From(borrowTableName + " br").
		Join(booksTableName + " b on b.id = br.book_id").
		Where(sq.Eq{"br.id": recordID}).
		Where(sq.Eq{"br.username": memberID}).
		Suffix("FOR UPDATE OF br").
		ToSql()
}

// borrowRecordLookupFailed treats a malformed id like an unknown one: it
// cannot be a uuid, so it names no record.
func borrowRecordLookupFailed(err error) error {
	if errors.Is(err, sql.ErrNoRows) || isPgError(err, pgerrcode.InvalidTextRepresentation) {
		return errs.ErrRecordNotFound
	}
	return errors.Wrap(err, "select borrow record")
}

// favoriteInsertFailed reports a unique violation as added: a concurrent
// toggle got there first.
func favoriteInsertFailed(err error) (bool, error) {
	if isPgError(err, pgerrcode.UniqueViolation) {
		return true, nil
	}
	return false, errors.Wrap(err, "insert favorite")
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

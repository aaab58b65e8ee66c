package mysql_test

import (
	"context"
	"testing"
	"time"

	driver "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/jakduk/jakduk-go/domain"
	mysqlRepo "github.com/jakduk/jakduk-go/internal/repository/mysql"
)

func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return gdb, mock
}

var feelingColumns = []string{"id", "target_type", "target_id", "user_id", "feeling", "created_at"}

func articleTarget() domain.FeelingTarget {
	return domain.FeelingTarget{Type: domain.TargetArticle, ID: 10}
}

func TestFindEntryNotFound(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewFeelingRepository(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `feeling`").
		WillReturnRows(sqlmock.NewRows(feelingColumns))

	_, err := repo.FindEntry(context.Background(), articleTarget(), 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFirstFeelingCreatesEntry(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewFeelingRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `feeling` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(feelingColumns))
	mock.ExpectExec("INSERT INTO `feeling`").
		WillReturnResult(sqlmock.NewResult(55, 1))
	mock.ExpectQuery("SELECT feeling, count(.+) FROM `feeling`").
		WillReturnRows(sqlmock.NewRows([]string{"feeling", "total"}).AddRow(1, 1))
	mock.ExpectExec("UPDATE `article` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repo.Toggle(context.Background(), articleTarget(), 3, domain.FeelingLike)
	require.NoError(t, err)
	assert.Equal(t, domain.FeelingLike, res.MyFeeling)
	assert.Equal(t, domain.FeelingCounts{Likes: 1}, res.Counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleSameKindWithdraws(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewFeelingRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `feeling` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(feelingColumns).
			AddRow(55, 1, 10, 3, 1, time.Now()))
	mock.ExpectExec("DELETE FROM `feeling`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT feeling, count(.+) FROM `feeling`").
		WillReturnRows(sqlmock.NewRows([]string{"feeling", "total"}))
	mock.ExpectExec("UPDATE `article` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repo.Toggle(context.Background(), articleTarget(), 3, domain.FeelingLike)
	require.NoError(t, err)
	assert.Equal(t, domain.FeelingNone, res.MyFeeling)
	assert.Equal(t, domain.FeelingCounts{}, res.Counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleOppositeKindFlips(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewFeelingRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `feeling` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(feelingColumns).
			AddRow(55, 1, 10, 3, 1, time.Now()))
	mock.ExpectExec("UPDATE `feeling` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT feeling, count(.+) FROM `feeling`").
		WillReturnRows(sqlmock.NewRows([]string{"feeling", "total"}).AddRow(2, 1))
	mock.ExpectExec("UPDATE `article` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	res, err := repo.Toggle(context.Background(), articleTarget(), 3, domain.FeelingDislike)
	require.NoError(t, err)
	assert.Equal(t, domain.FeelingDislike, res.MyFeeling)
	assert.Equal(t, domain.FeelingCounts{Dislikes: 1}, res.Counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleLostRaceSurfacesConflict(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewFeelingRepository(gdb)

	// the duplicate request committed between our lock attempt and insert
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `feeling` (.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(feelingColumns))
	mock.ExpectExec("INSERT INTO `feeling`").
		WillReturnError(&driver.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	_, err := repo.Toggle(context.Background(), articleTarget(), 3, domain.FeelingLike)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByType(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewFeelingRepository(gdb)

	mock.ExpectQuery("SELECT feeling, count(.+) FROM `feeling`").
		WillReturnRows(sqlmock.NewRows([]string{"feeling", "total"}).
			AddRow(1, 3).
			AddRow(2, 1))

	counts, err := repo.CountByType(context.Background(), articleTarget())
	require.NoError(t, err)
	assert.Equal(t, domain.FeelingCounts{Likes: 3, Dislikes: 1}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserIDsOrderedNewestFirst(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewFeelingRepository(gdb)

	mock.ExpectQuery("SELECT user_id FROM `feeling`").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).
			AddRow(9).
			AddRow(4))

	ids, err := repo.FindUserIDs(context.Background(), articleTarget(), domain.FeelingLike)
	require.NoError(t, err)
	assert.Equal(t, []int64{9, 4}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

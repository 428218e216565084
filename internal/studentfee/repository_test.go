package studentfee_test

import (
	"testing"
	"time"

	"github.com/campuscore/api-fees/internal/feecategory"
	"github.com/campuscore/api-fees/internal/feepayment"
	"github.com/campuscore/api-fees/internal/student"
	"github.com/campuscore/api-fees/internal/studentfee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, student.Migrate(db))
	require.NoError(t, feecategory.Migrate(db))
	require.NoError(t, studentfee.Migrate(db))
	require.NoError(t, feepayment.Migrate(db))
	return db
}

func seedStudent(t *testing.T, db *gorm.DB, name, username string) *student.Student {
	t.Helper()
	s := &student.Student{Name: name, Username: username}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedCategory(t *testing.T, db *gorm.DB, name string, base float64) *feecategory.FeeCategory {
	t.Helper()
	c := &feecategory.FeeCategory{CategoryName: name, BaseAmount: base, IsActive: true}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestAssignCreatesPendingObligation(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Tuition", 50000)

	fee, err := repo.Assign(s.ID, c.ID, "2024-25", 50000, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, fee.PaidAmount)
	assert.Equal(t, studentfee.StatusPending, fee.Status)
	assert.Equal(t, 50000.0, fee.TotalAmount)
	assert.Equal(t, 50000.0, fee.Balance())
}

func TestAssignRejectsNonPositiveAmount(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Tuition", 50000)

	_, err := repo.Assign(s.ID, c.ID, "2024-25", 0, nil)
	assert.ErrorIs(t, err, studentfee.ErrInvalidAmount)

	_, err = repo.Assign(s.ID, c.ID, "2024-25", -100, nil)
	assert.ErrorIs(t, err, studentfee.ErrInvalidAmount)
}

func TestAssignRejectsMissingReferences(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Tuition", 50000)

	_, err := repo.Assign(999, c.ID, "2024-25", 50000, nil)
	assert.ErrorIs(t, err, studentfee.ErrStudentNotFound)

	_, err = repo.Assign(s.ID, 999, "2024-25", 50000, nil)
	assert.ErrorIs(t, err, studentfee.ErrCategoryNotFound)
}

func TestAssignAllowsRepeatedCategoryAndYear(t *testing.T) {
	// Two obligations for the same category/year are two installments,
	// not a conflict.
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Hostel", 20000)

	first, err := repo.Assign(s.ID, c.ID, "2024-25", 10000, nil)
	require.NoError(t, err)
	second, err := repo.Assign(s.ID, c.ID, "2024-25", 10000, nil)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	fees, err := repo.ListByStudent(s.ID)
	require.NoError(t, err)
	assert.Len(t, fees, 2)
}

func insertPayment(t *testing.T, db *gorm.DB, feeID uint, amount float64, receipt string) {
	t.Helper()
	require.NoError(t, db.Create(&feepayment.FeePayment{
		StudentFeeID:  feeID,
		PaymentDate:   time.Now(),
		Amount:        amount,
		PaymentMode:   feepayment.ModeCash,
		ReceiptNumber: receipt,
	}).Error)
}

func TestReconcileDerivesPaidAmountAndStatus(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Tuition", 50000)

	fee, err := repo.Assign(s.ID, c.ID, "2024-25", 50000, nil)
	require.NoError(t, err)

	insertPayment(t, db, fee.ID, 20000, "RCP000001")
	require.NoError(t, studentfee.Reconcile(db, fee.ID))

	got, err := repo.FindByID(fee.ID)
	require.NoError(t, err)
	assert.Equal(t, 20000.0, got.PaidAmount)
	assert.Equal(t, studentfee.StatusPartial, got.Status)

	insertPayment(t, db, fee.ID, 30000, "RCP000002")
	require.NoError(t, studentfee.Reconcile(db, fee.ID))

	got, err = repo.FindByID(fee.ID)
	require.NoError(t, err)
	assert.Equal(t, 50000.0, got.PaidAmount)
	assert.Equal(t, studentfee.StatusPaid, got.Status)
	assert.Equal(t, 0.0, got.Balance())
}

func TestReconcileIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Tuition", 50000)

	fee, err := repo.Assign(s.ID, c.ID, "2024-25", 50000, nil)
	require.NoError(t, err)
	insertPayment(t, db, fee.ID, 20000, "RCP000001")

	require.NoError(t, studentfee.Reconcile(db, fee.ID))
	first, err := repo.FindByID(fee.ID)
	require.NoError(t, err)

	require.NoError(t, studentfee.Reconcile(db, fee.ID))
	second, err := repo.FindByID(fee.ID)
	require.NoError(t, err)

	assert.Equal(t, first.PaidAmount, second.PaidAmount)
	assert.Equal(t, first.Status, second.Status)
}

func TestReconcileTreatsOverpaymentAsPaid(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Exam", 1000)

	fee, err := repo.Assign(s.ID, c.ID, "2024-25", 1000, nil)
	require.NoError(t, err)

	insertPayment(t, db, fee.ID, 1500, "RCP000001")
	require.NoError(t, studentfee.Reconcile(db, fee.ID))

	got, err := repo.FindByID(fee.ID)
	require.NoError(t, err)
	assert.Equal(t, studentfee.StatusPaid, got.Status)
	assert.Equal(t, -500.0, got.Balance())
}

func TestReconcileMissingFee(t *testing.T) {
	db := newTestDB(t)
	assert.ErrorIs(t, studentfee.Reconcile(db, 999), studentfee.ErrFeeNotFound)
}

func TestListPendingExcludesPaidAndOrdersByDueDate(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Tuition", 50000)

	soon := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	paid, err := repo.Assign(s.ID, c.ID, "2024-25", 1000, &soon)
	require.NoError(t, err)
	insertPayment(t, db, paid.ID, 1000, "RCP000001")
	require.NoError(t, studentfee.Reconcile(db, paid.ID))

	lateFee, err := repo.Assign(s.ID, c.ID, "2024-25", 2000, &later)
	require.NoError(t, err)
	soonFee, err := repo.Assign(s.ID, c.ID, "2025-26", 3000, &soon)
	require.NoError(t, err)

	pending, err := repo.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, soonFee.ID, pending[0].ID)
	assert.Equal(t, lateFee.ID, pending[1].ID)
	assert.Equal(t, 3000.0, pending[0].Balance)
}

func TestListByStudentJoinsDisplayFields(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	other := seedStudent(t, db, "Rohan Gupta", "rohan")
	tuition := seedCategory(t, db, "Tuition", 50000)
	hostel := seedCategory(t, db, "Hostel", 20000)

	_, err := repo.Assign(s.ID, tuition.ID, "2023-24", 45000, nil)
	require.NoError(t, err)
	_, err = repo.Assign(s.ID, hostel.ID, "2024-25", 20000, nil)
	require.NoError(t, err)
	_, err = repo.Assign(s.ID, tuition.ID, "2024-25", 50000, nil)
	require.NoError(t, err)
	_, err = repo.Assign(other.ID, tuition.ID, "2024-25", 50000, nil)
	require.NoError(t, err)

	fees, err := repo.ListByStudent(s.ID)
	require.NoError(t, err)
	require.Len(t, fees, 3)

	// Newest academic year first, then category name.
	assert.Equal(t, "2024-25", fees[0].AcademicYear)
	assert.Equal(t, "Hostel", fees[0].CategoryName)
	assert.Equal(t, "2024-25", fees[1].AcademicYear)
	assert.Equal(t, "Tuition", fees[1].CategoryName)
	assert.Equal(t, "2023-24", fees[2].AcademicYear)

	assert.Equal(t, "Asha Verma", fees[0].StudentName)
	assert.Equal(t, "asha", fees[0].StudentUsername)
	assert.Equal(t, 20000.0, fees[0].Balance)
}

func TestListAllOrdersByDueDateDescending(t *testing.T) {
	db := newTestDB(t)
	repo := studentfee.NewRepository(db)
	s := seedStudent(t, db, "Asha Verma", "asha")
	c := seedCategory(t, db, "Tuition", 50000)

	early := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	late := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	first, err := repo.Assign(s.ID, c.ID, "2024-25", 1000, &early)
	require.NoError(t, err)
	second, err := repo.Assign(s.ID, c.ID, "2024-25", 2000, &late)
	require.NoError(t, err)

	all, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)
}

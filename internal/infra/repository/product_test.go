//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"cellar-shop/internal/domain/product"
	"cellar-shop/internal/domain/stock"
	"cellar-shop/internal/infra"
	"cellar-shop/internal/infra/repository"
	sqlc "cellar-shop/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductWriteQueries struct {
	mock.Mock
}

func (m *MockProductWriteQueries) CreateProduct(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateProductParams) (sqlc.Products, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Products), args.Error(1)
}

func (m *MockProductWriteQueries) GetProductForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Products, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Products), args.Error(1)
}

func (m *MockProductWriteQueries) ListProductStock(ctx context.Context, db sqlc.DBTX, productIds []uuid.UUID) ([]sqlc.ProductStock, error) {
	args := m.Called(ctx, db, productIds)
	return args.Get(0).([]sqlc.ProductStock), args.Error(1)
}

func (m *MockProductWriteQueries) UpsertProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertProductStockParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

func (m *MockProductWriteQueries) TouchProduct(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error {
	return m.Called(ctx, db, id).Error(0)
}

func (m *MockProductWriteQueries) DecrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementProductStockParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductWriteQueries) IncrementProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementProductStockParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductWriteQueries) GetProductStockQuantity(ctx context.Context, db sqlc.DBTX, arg sqlc.GetProductStockQuantityParams) (int32, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int32), args.Error(1)
}

func TestProductRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sized product writes one row per size", func(t *testing.T) {
		q := new(MockProductWriteQueries)
		p, err := product.NewSizedProduct("Tawny Port", 3200, stock.Ledger{stock.Size75cl: 5})
		require.NoError(t, err)

		q.On("CreateProduct", ctx, nil, mock.MatchedBy(func(arg sqlc.CreateProductParams) bool {
			return arg.ID == p.ID() && arg.HasSizes
		})).Return(sqlc.Products{ID: p.ID()}, nil)
		q.On("UpsertProductStock", ctx, nil, mock.AnythingOfType("sqlc.UpsertProductStockParams")).Return(nil)

		err = repository.NewProductRepository(q, nil).Create(ctx, nil, p)

		require.NoError(t, err)
		q.AssertNumberOfCalls(t, "UpsertProductStock", len(stock.Vocabulary()))
		q.AssertCalled(t, "UpsertProductStock", ctx, nil, sqlc.UpsertProductStockParams{ProductID: p.ID(), SizeKey: "75CL", Quantity: 5})
	})

	t.Run("sizeless product writes the empty key", func(t *testing.T) {
		q := new(MockProductWriteQueries)
		p, err := product.NewUnsizedProduct("Corkscrew", 900, 3)
		require.NoError(t, err)

		q.On("CreateProduct", ctx, nil, mock.Anything).Return(sqlc.Products{ID: p.ID()}, nil)
		q.On("UpsertProductStock", ctx, nil, sqlc.UpsertProductStockParams{ProductID: p.ID(), SizeKey: "", Quantity: 3}).Return(nil).Once()

		require.NoError(t, repository.NewProductRepository(q, nil).Create(ctx, nil, p))
		q.AssertExpectations(t)
	})

	t.Run("duplicate id", func(t *testing.T) {
		q := new(MockProductWriteQueries)
		p, err := product.NewUnsizedProduct("Corkscrew", 900, 3)
		require.NoError(t, err)
		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		q.On("CreateProduct", ctx, nil, mock.Anything).Return(sqlc.Products{}, dup)

		err = repository.NewProductRepository(q, nil).Create(ctx, nil, p)

		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		q.AssertNotCalled(t, "UpsertProductStock", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProductRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("rebuilds the ledger and skips unknown keys", func(t *testing.T) {
		q := new(MockProductWriteQueries)
		q.On("GetProductForUpdate", ctx, nil, id).Return(sqlc.Products{ID: id, Name: "Tawny Port", PriceCents: 3200, HasSizes: true}, nil)
		q.On("ListProductStock", ctx, nil, []uuid.UUID{id}).Return([]sqlc.ProductStock{
			{ProductID: id, SizeKey: "75CL", Quantity: 4},
			{ProductID: id, SizeKey: "JEROBOAM", Quantity: 9},
		}, nil)

		p, err := repository.NewProductRepository(q, nil).GetForUpdate(ctx, nil, id)

		require.NoError(t, err)
		assert.Equal(t, 4, p.Available(stock.Size75cl))
		assert.Equal(t, 4, p.TotalStock())
	})

	t.Run("missing row", func(t *testing.T) {
		q := new(MockProductWriteQueries)
		q.On("GetProductForUpdate", ctx, nil, id).Return(sqlc.Products{}, pgx.ErrNoRows)

		_, err := repository.NewProductRepository(q, nil).GetForUpdate(ctx, nil, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestProductRepository_Decrement(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	params := sqlc.DecrementProductStockParams{Quantity: 3, ProductID: id, SizeKey: "70CL"}

	testCases := []struct {
		name      string
		affected  int64
		decErr    error
		available int32
		readErr   error
		check     func(t *testing.T, err error)
	}{
		{
			name:     "row had enough",
			affected: 1,
			check:    func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:      "row had too little",
			available: 2,
			check: func(t *testing.T, err error) {
				var ise *stock.InsufficientStockError
				require.ErrorAs(t, err, &ise)
				assert.Equal(t, stock.InsufficientStockError{Size: stock.Size70cl, Available: 2, Requested: 3}, *ise)
			},
		},
		{
			name:    "row never existed",
			readErr: pgx.ErrNoRows,
			check: func(t *testing.T, err error) {
				var ise *stock.InsufficientStockError
				require.ErrorAs(t, err, &ise)
				assert.Zero(t, ise.Available)
			},
		},
		{
			name:   "database failure",
			decErr: errors.New("connection reset"),
			check: func(t *testing.T, err error) {
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := new(MockProductWriteQueries)
			q.On("DecrementProductStock", ctx, nil, params).Return(tc.affected, tc.decErr)
			q.On("GetProductStockQuantity", ctx, nil, sqlc.GetProductStockQuantityParams{ProductID: id, SizeKey: "70CL"}).
				Return(tc.available, tc.readErr).Maybe()

			err := repository.NewProductRepository(q, nil).Decrement(ctx, nil, id, stock.Size70cl, 3)

			tc.check(t, err)
		})
	}
}

func TestProductRepository_Increment(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("existing row", func(t *testing.T) {
		q := new(MockProductWriteQueries)
		q.On("IncrementProductStock", ctx, nil, sqlc.IncrementProductStockParams{Quantity: 2, ProductID: id, SizeKey: "1L"}).Return(int64(1), nil)

		require.NoError(t, repository.NewProductRepository(q, nil).Increment(ctx, nil, id, stock.Size1L, 2))
		q.AssertNotCalled(t, "UpsertProductStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing row is created", func(t *testing.T) {
		q := new(MockProductWriteQueries)
		q.On("IncrementProductStock", ctx, nil, mock.Anything).Return(int64(0), nil)
		q.On("UpsertProductStock", ctx, nil, sqlc.UpsertProductStockParams{ProductID: id, SizeKey: "1L", Quantity: 2}).Return(nil)

		require.NoError(t, repository.NewProductRepository(q, nil).Increment(ctx, nil, id, stock.Size1L, 2))
		q.AssertExpectations(t)
	})
}

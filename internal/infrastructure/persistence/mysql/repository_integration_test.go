package mysql

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-rest/internal/domain/author"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	"github.com/xiebiao/bookstore-rest/internal/domain/category"
	"github.com/xiebiao/bookstore-rest/internal/domain/comment"
	"github.com/xiebiao/bookstore-rest/internal/domain/order"
	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
	"github.com/xiebiao/bookstore-rest/internal/domain/user"
)

// 需要一个空的MySQL数据库：
//
//	BOOKSTORE_TEST_MYSQL_DSN="root:root@tcp(127.0.0.1:3306)/bookstore_test?parseTime=true" go test ./internal/infrastructure/persistence/mysql/...
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("BOOKSTORE_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("BOOKSTORE_TEST_MYSQL_DSN未设置，跳过MySQL集成测试")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return db
}

func seedBook(t *testing.T, ctx context.Context, db *gorm.DB, stock int) (*author.Author, *category.Category, *book.Book) {
	t.Helper()
	a, err := author.NewAuthor("Rob", "Pike")
	require.NoError(t, err)
	require.NoError(t, NewAuthorRepository(db).Create(ctx, a))

	c, err := category.NewCategory("cat-" + a.ID[:8])
	require.NoError(t, err)
	require.NoError(t, NewCategoryRepository(db).Create(ctx, c))

	b, err := book.NewBook(book.Params{Title: "The Go Programming Language", Price: decimal.RequireFromString("35.00"), Active: true, UnitsInStock: stock})
	require.NoError(t, err)
	a.LinkBook(b)
	c.LinkBook(b)
	require.NoError(t, NewBookRepository(db).Create(ctx, b))
	return a, c, b
}

func TestBookRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	repo := NewBookRepository(db)
	a, c, b := seedBook(t, ctx, db, 2)

	t.Run("按作者和分类查询", func(t *testing.T) {
		byAuthor, err := repo.ListByAuthorID(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, byAuthor, 1)
		assert.Equal(t, []string{c.ID}, byAuthor[0].CategoryIDs)

		byCategory, err := repo.ListByCategoryID(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, b.ID, byCategory[0].ID)
	})

	t.Run("页码极大时返回空列表", func(t *testing.T) {
		books, total, err := repo.List(ctx, book.ListParams{Page: math.MaxInt / 10, Size: 10})
		require.NoError(t, err)
		assert.Empty(t, books)
		assert.GreaterOrEqual(t, total, int64(1))
	})

	t.Run("库存不足时不扣减", func(t *testing.T) {
		tx := NewTxManager(db)
		err := tx.Transaction(ctx, func(ctx context.Context) error {
			if _, err := repo.LockByID(ctx, b.ID); err != nil {
				return err
			}
			return repo.UpdateStock(ctx, b.ID, -3)
		})
		assert.ErrorIs(t, err, book.ErrInsufficientStock)

		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.UnitsInStock)
	})

	t.Run("事务回滚", func(t *testing.T) {
		rollback := errors.New("rollback")
		err := NewTxManager(db).Transaction(ctx, func(ctx context.Context) error {
			require.NoError(t, repo.UpdateStock(ctx, b.ID, -1))
			return rollback
		})
		assert.ErrorIs(t, err, rollback)

		got, err := repo.FindByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, got.UnitsInStock)
	})
}

func TestRatingRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_, _, b := seedBook(t, ctx, db, 1)

	u := user.NewUser("Ann", "Lee", "ann-"+b.ID[:8]+"@example.com", "hash")
	require.NoError(t, NewUserRepository(db).Create(ctx, u))

	repo := NewRatingRepository(db)
	r1, _ := rating.NewRating(4, b.ID, u.ID)
	require.NoError(t, repo.Create(ctx, r1))

	r2, _ := rating.NewRating(2, b.ID, u.ID)
	assert.ErrorIs(t, repo.Create(ctx, r2), rating.ErrDuplicateRating)

	summary, err := repo.Summarize(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 0.001)

	t.Run("删除用户级联删除评分", func(t *testing.T) {
		require.NoError(t, NewUserRepository(db).Delete(ctx, u.ID))
		_, err := repo.FindByBookAndUser(ctx, b.ID, u.ID)
		assert.ErrorIs(t, err, rating.ErrRatingNotFound)
	})
}

func TestOrderRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_, _, b := seedBook(t, ctx, db, 5)
	repo := NewOrderRepository(db)
	email := "buyer-" + b.ID[:8] + "@example.com"

	place := func(c *order.Customer) *order.Order {
		o := order.NewOrder(1, decimal.RequireFromString("35.00"))
		o.TrackingNumber = order.NewTrackingNumber()
		o.AddItem(order.NewOrderItem(b.ID, "", decimal.RequireFromString("35.00"), 1))
		addr := order.NewAddress("1 Main St", "Springfield", "IL", "US", "62701")
		o.SetAddresses(addr, addr)
		c.AddOrder(o)
		require.NoError(t, NewTxManager(db).Transaction(ctx, func(ctx context.Context) error {
			return repo.Save(ctx, c, o)
		}))
		return o
	}

	t.Run("同一邮箱的新客户挂到已有客户下", func(t *testing.T) {
		// 两个请求都没查到客户，各自新建了不同ID的客户
		first := order.NewCustomer("Jane", "Doe", email)
		second := order.NewCustomer("Jane", "Doe", email)
		require.NotEqual(t, first.ID, second.ID)

		o1 := place(first)
		o2 := place(second)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.ID, o2.CustomerID)

		got, err := repo.FindByTrackingNumber(ctx, o2.TrackingNumber)
		require.NoError(t, err)
		assert.Equal(t, o1.CustomerID, got.CustomerID)
		require.NotNil(t, got.Customer)
		assert.Equal(t, email, got.Customer.Email)
	})
}

func TestCommentRepository_Integration(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_, _, b := seedBook(t, ctx, db, 1)

	u := user.NewUser("Ann", "Lee", "commenter-"+b.ID[:8]+"@example.com", "hash")
	require.NoError(t, NewUserRepository(db).Create(ctx, u))

	repo := NewCommentRepository(db)

	t.Run("创建时间相同按插入顺序返回", func(t *testing.T) {
		var want []string
		for _, content := range []string{"first", "second", "third"} {
			c, err := comment.NewComment(content, b.ID, u.ID)
			require.NoError(t, err)
			// 同一时刻写入
			c.CreatedAt = c.CreatedAt.Truncate(time.Second)
			c.UpdatedAt = c.CreatedAt
			require.NoError(t, repo.Create(ctx, c))
			want = append(want, c.ID)
		}

		got, err := repo.ListByBookID(ctx, b.ID)
		require.NoError(t, err)
		ids := make([]string, len(got))
		for i, c := range got {
			ids[i] = c.ID
		}
		assert.Equal(t, want, ids)
	})
}

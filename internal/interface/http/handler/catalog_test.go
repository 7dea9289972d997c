package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	appauthor "github.com/xiebiao/bookstore-rest/internal/application/author"
	appbook "github.com/xiebiao/bookstore-rest/internal/application/book"
	appcategory "github.com/xiebiao/bookstore-rest/internal/application/category"
	"github.com/xiebiao/bookstore-rest/internal/domain/author"
	authormocks "github.com/xiebiao/bookstore-rest/internal/domain/author/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/book"
	bookmocks "github.com/xiebiao/bookstore-rest/internal/domain/book/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/category"
	categorymocks "github.com/xiebiao/bookstore-rest/internal/domain/category/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/rating"
	ratingmocks "github.com/xiebiao/bookstore-rest/internal/domain/rating/mocks"
	"github.com/xiebiao/bookstore-rest/internal/domain/transaction"
	"github.com/xiebiao/bookstore-rest/internal/interface/http/handler"
	"github.com/xiebiao/bookstore-rest/pkg/pagination"
)

type catalogFixture struct {
	books      *bookmocks.MockRepository
	authors    *authormocks.MockRepository
	categories *categorymocks.MockRepository
	ratings    *ratingmocks.MockRepository
	router     *gin.Engine
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	ctrl := gomock.NewController(t)
	f := &catalogFixture{
		books:      bookmocks.NewMockRepository(ctrl),
		authors:    authormocks.NewMockRepository(ctrl),
		categories: categorymocks.NewMockRepository(ctrl),
		ratings:    ratingmocks.NewMockRepository(ctrl),
	}
	bookService := book.NewService(f.books)

	bh := handler.NewBookHandler(
		appbook.NewListBooksUseCase(bookService),
		appbook.NewGetBookUseCase(bookService, f.authors, f.categories, rating.NewService(f.ratings)),
		appbook.NewCreateBookUseCase(bookService, f.authors, f.categories, transaction.Passthrough),
	)
	ah := handler.NewAuthorHandler(
		appauthor.NewGetAuthorUseCase(f.authors, f.books),
		appauthor.NewCreateAuthorUseCase(f.authors),
	)
	ch := handler.NewCategoryHandler(
		appcategory.NewListCategoriesUseCase(f.categories),
		appcategory.NewGetCategoryUseCase(f.categories, f.books),
		appcategory.NewCreateCategoryUseCase(f.categories),
	)

	r := gin.New()
	r.GET("/books", bh.ListBooks)
	r.GET("/books/:id", bh.GetBook)
	r.POST("/books", bh.CreateBook)
	r.GET("/authors/:id", ah.GetAuthor)
	r.POST("/authors", ah.CreateAuthor)
	r.GET("/category", ch.ListCategories)
	r.GET("/category/:id", ch.GetCategory)
	r.POST("/category", ch.CreateCategory)
	f.router = r
	return f
}

func TestBookHandler_ListBooks(t *testing.T) {
	t.Run("不支持的排序", func(t *testing.T) {
		f := newCatalogFixture(t)
		w := perform(f.router, http.MethodGet, "/books?sort=random", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("默认分页参数", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.books.EXPECT().List(gomock.Any(), book.ListParams{Page: 0, Size: 24, Sort: book.SortUpdatedDesc}).
			Return([]*book.Book{{ID: "b1", Title: "Go", Price: decimal.RequireFromString("10")}}, int64(1), nil)

		w := perform(f.router, http.MethodGet, "/books", nil)
		require.Equal(t, http.StatusOK, w.Code)

		_, data := decode(t, w)
		var page pagination.Page[appbook.Summary]
		require.NoError(t, json.Unmarshal(data, &page))
		require.Len(t, page.Content, 1)
		assert.Equal(t, "10.00", page.Content[0].Price)
	})
}

func TestBookHandler_GetBook(t *testing.T) {
	f := newCatalogFixture(t)
	f.books.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, book.ErrBookNotFound)

	w := perform(f.router, http.MethodGet, "/books/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookHandler_CreateBook(t *testing.T) {
	t.Run("作者ID不是UUID", func(t *testing.T) {
		f := newCatalogFixture(t)
		w := perform(f.router, http.MethodPost, "/books", map[string]interface{}{
			"title":    "Go",
			"authorId": "a1",
			"price":    "10.00",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("作者不存在返回404", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.authors.EXPECT().FindByID(gomock.Any(), bookID).Return(nil, author.ErrAuthorNotFound)

		w := perform(f.router, http.MethodPost, "/books", map[string]interface{}{
			"title":    "Go",
			"authorId": bookID,
			"price":    "10.00",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthorHandler_CreateAuthor(t *testing.T) {
	t.Run("姓名都为空", func(t *testing.T) {
		f := newCatalogFixture(t)
		w := perform(f.router, http.MethodPost, "/authors", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("创建成功返回201", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.authors.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		w := perform(f.router, http.MethodPost, "/authors", map[string]string{"firstName": "Alan", "lastName": "Donovan"})
		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestCategoryHandler(t *testing.T) {
	t.Run("列表按名称排序", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.categories.EXPECT().List(gomock.Any()).Return([]*category.Category{
			{ID: "c2", Name: "Science"},
			{ID: "c1", Name: "Fiction"},
		}, nil)

		w := perform(f.router, http.MethodGet, "/category", nil)
		require.Equal(t, http.StatusOK, w.Code)

		_, data := decode(t, w)
		var items []appcategory.Item
		require.NoError(t, json.Unmarshal(data, &items))
		require.Len(t, items, 2)
		assert.Equal(t, "Fiction", items[0].Name)
	})

	t.Run("分类不存在返回404", func(t *testing.T) {
		f := newCatalogFixture(t)
		f.categories.EXPECT().FindByID(gomock.Any(), "missing").Return(nil, category.ErrCategoryNotFound)

		w := perform(f.router, http.MethodGet, "/category/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("名称必填", func(t *testing.T) {
		f := newCatalogFixture(t)
		w := perform(f.router, http.MethodPost, "/category", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

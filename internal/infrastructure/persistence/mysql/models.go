package mysql

import (
	"time"

	"github.com/shopspring/decimal"
)

// 设计说明:
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain层的实体不依赖GORM，Repository负责两者之间的转换
// 3. 主键是实体构造时生成的UUID字符串，不使用自增ID
// 4. 外键在"多"的一侧；"一"的一侧的集合只用于建表约束，不做预加载

// UserModel 用户表
// 删除用户时评论、评分由外键级联删除
type UserModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	FirstName string         `gorm:"size:50;not null;comment:名"`
	LastName  string         `gorm:"size:50;not null;comment:姓"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Comments  []CommentModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Ratings   []RatingModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// AuthorModel 作者表
type AuthorModel struct {
	ID        string      `gorm:"primaryKey;size:36"`
	FirstName string      `gorm:"size:50;not null"`
	LastName  string      `gorm:"size:50;not null"`
	Books     []BookModel `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// CategoryModel 分类表
type CategoryModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// BookModel 图书表
// 1. 价格使用decimal(5,2)，范围0-999.99
// 2. 与分类多对多，关联表book_categories
// 3. idx_list用于上架图书按更新时间排序
type BookModel struct {
	ID           string              `gorm:"primaryKey;size:36"`
	Title        string              `gorm:"index:idx_search;size:255;not null;comment:书名"`
	Subtitle     string              `gorm:"size:255;comment:副标题"`
	Description  string              `gorm:"type:text;comment:图书描述"`
	ImageURL     string              `gorm:"size:500;comment:封面图片URL"`
	IssueYear    int                 `gorm:"comment:出版年份"`
	PageCount    int                 `gorm:"comment:页数"`
	Hardcover    bool                `gorm:"comment:是否精装"`
	AuthorID     string              `gorm:"index;size:36;not null;comment:作者ID"`
	Price        decimal.Decimal     `gorm:"type:decimal(5,2);not null;comment:价格"`
	PromoPrice   decimal.NullDecimal `gorm:"type:decimal(5,2);comment:促销价"`
	Active       bool                `gorm:"index:idx_list;default:true;comment:是否上架"`
	UnitsInStock int                 `gorm:"not null;default:0;comment:库存数量"`
	Categories   []CategoryModel     `gorm:"many2many:book_categories;joinForeignKey:BookID;joinReferences:CategoryID;constraint:OnDelete:CASCADE"`
	Comments     []CommentModel      `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Ratings      []RatingModel       `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time           `gorm:"comment:创建时间"`
	UpdatedAt    time.Time           `gorm:"index:idx_list;comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// CommentModel 评论表
// Seq自增，created_at相同时按插入顺序排列
type CommentModel struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Seq       uint64    `gorm:"autoIncrement;uniqueIndex;not null"`
	Content   string    `gorm:"size:255;not null"`
	BookID    string    `gorm:"index;size:36;not null"`
	UserID    string    `gorm:"index;size:36;not null"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// TableName 指定表名
func (CommentModel) TableName() string {
	return "comments"
}

// RatingModel 评分表
// (book_id, user_id)唯一索引，保证每个用户对每本图书最多一条评分
type RatingModel struct {
	ID        string `gorm:"primaryKey;size:36"`
	Vote      int    `gorm:"type:tinyint;not null;comment:评分1-5"`
	BookID    string `gorm:"uniqueIndex:uk_rating_book_user,priority:1;size:36;not null"`
	UserID    string `gorm:"uniqueIndex:uk_rating_book_user,priority:2;size:36;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (RatingModel) TableName() string {
	return "ratings"
}

// CustomerModel 下单客户表（按邮箱识别）
type CustomerModel struct {
	ID        string       `gorm:"primaryKey;size:36"`
	FirstName string       `gorm:"size:50;not null"`
	LastName  string       `gorm:"size:50;not null"`
	Email     string       `gorm:"uniqueIndex;size:100;not null"`
	Orders    []OrderModel `gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}

// AddressModel 地址表
type AddressModel struct {
	ID      string `gorm:"primaryKey;size:36"`
	Street  string `gorm:"size:255"`
	City    string `gorm:"size:100"`
	State   string `gorm:"size:100"`
	Country string `gorm:"size:100"`
	ZipCode string `gorm:"size:20"`
}

// TableName 指定表名
func (AddressModel) TableName() string {
	return "addresses"
}

// OrderModel 订单表
// 1. 与OrderItemModel是一对多关系
// 2. TrackingNumber有唯一索引(业务主键)
type OrderModel struct {
	ID                string           `gorm:"primaryKey;size:36"`
	TrackingNumber    string           `gorm:"uniqueIndex;size:36;not null;comment:订单号"`
	TotalQuantity     int              `gorm:"not null;comment:商品总数量"`
	TotalPrice        decimal.Decimal  `gorm:"type:decimal(10,2);not null;comment:订单总金额"`
	CustomerID        string           `gorm:"index;size:36;not null"`
	ShippingAddressID string           `gorm:"size:36;not null"`
	BillingAddressID  string           `gorm:"size:36;not null"`
	Customer          *CustomerModel   `gorm:"foreignKey:CustomerID"`
	ShippingAddress   *AddressModel    `gorm:"foreignKey:ShippingAddressID"`
	BillingAddress    *AddressModel    `gorm:"foreignKey:BillingAddressID"`
	Items             []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt         time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细表
// UnitPrice记录下单时的价格快照
type OrderItemModel struct {
	ID        string          `gorm:"primaryKey;size:36"`
	OrderID   string          `gorm:"index;size:36;not null;comment:订单ID"`
	BookID    string          `gorm:"index;size:36;not null;comment:图书ID"`
	ImageURL  string          `gorm:"size:500"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(5,2);not null;comment:下单时单价"`
	Quantity  int             `gorm:"not null;comment:购买数量"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

// allModels AutoMigrate的模型列表
func allModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&AuthorModel{},
		&CategoryModel{},
		&BookModel{},
		&CommentModel{},
		&RatingModel{},
		&CustomerModel{},
		&AddressModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}

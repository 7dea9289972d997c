// Package pagination 内存分页
//
// 作者/分类详情、评论列表都是先取出全部子集合，排序后在应用层切片，
// 页码从0开始。
package pagination

const (
	// DefaultPage 默认页码
	DefaultPage = 0
	// DefaultSize 默认每页数量
	DefaultSize = 24
	// MaxSize 每页最大数量
	MaxSize = 100
)

// Page 分页数据封装
type Page[T any] struct {
	Content       []T   `json:"content"`       // 当前页数据
	TotalElements int64 `json:"totalElements"` // 总记录数
	TotalPages    int   `json:"totalPages"`    // 总页数
	Number        int   `json:"number"`        // 当前页码(从0开始)
	Size          int   `json:"size"`          // 每页大小
}

// Normalize 参数默认值与范围限制
func Normalize(page, size int) (int, int) {
	if page < 0 {
		page = DefaultPage
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}
	return page, size
}

// TotalPages 计算总页数
func TotalPages(total int64, size int) int {
	if size <= 0 {
		return 0
	}
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	return pages
}

// Offset 计算页起始偏移
// 页码不小于总页数时返回false，调用方直接返回空内容，避免乘法溢出
func Offset(page, size int, total int64) (int, bool) {
	if page < 0 || size <= 0 || page >= TotalPages(total, size) {
		return 0, false
	}
	return page * size, true
}

// Of 对已排序的完整集合切片
// 页码越界时返回空内容，TotalPages依然按总数计算
func Of[T any](items []T, page, size int) Page[T] {
	page, size = Normalize(page, size)
	total := len(items)

	content := make([]T, 0)
	if start, ok := Offset(page, size, int64(total)); ok {
		end := start + size
		if end > total {
			end = total
		}
		content = append(content, items[start:end]...)
	}

	return Page[T]{
		Content:       content,
		TotalElements: int64(total),
		TotalPages:    TotalPages(int64(total), size),
		Number:        page,
		Size:          size,
	}
}

// New 包装数据库分页结果
func New[T any](content []T, total int64, page, size int) Page[T] {
	if content == nil {
		content = make([]T, 0)
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    TotalPages(total, size),
		Number:        page,
		Size:          size,
	}
}

// Map 转换页内元素类型
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	content := make([]R, len(p.Content))
	for i, item := range p.Content {
		content[i] = fn(item)
	}
	return Page[R]{
		Content:       content,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Number:        p.Number,
		Size:          p.Size,
	}
}

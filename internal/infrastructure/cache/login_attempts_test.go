package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginAttemptCache(t *testing.T) {
	t.Run("达到上限后锁定", func(t *testing.T) {
		c := NewLoginAttemptCache(10, 3, time.Minute)
		for i := 1; i <= 2; i++ {
			assert.Equal(t, i, c.Failed("ann@example.com"))
			assert.False(t, c.Blocked("ann@example.com"))
		}
		c.Failed("ann@example.com")
		assert.True(t, c.Blocked("ANN@example.com "))
	})

	t.Run("登录成功清除计数", func(t *testing.T) {
		c := NewLoginAttemptCache(10, 1, time.Minute)
		c.Failed("ann@example.com")
		assert.True(t, c.Blocked("ann@example.com"))
		c.Succeeded("ann@example.com")
		assert.False(t, c.Blocked("ann@example.com"))
	})

	t.Run("过期后解除锁定", func(t *testing.T) {
		c := NewLoginAttemptCache(10, 1, 50*time.Millisecond)
		c.Failed("ann@example.com")
		assert.True(t, c.Blocked("ann@example.com"))
		assert.Eventually(t, func() bool { return !c.Blocked("ann@example.com") }, time.Second, 10*time.Millisecond)
	})

	t.Run("超出容量淘汰最旧的记录", func(t *testing.T) {
		c := NewLoginAttemptCache(2, 1, time.Minute)
		c.Failed("a@example.com")
		c.Failed("b@example.com")
		c.Failed("c@example.com")
		assert.Equal(t, 2, c.Len())
		assert.False(t, c.Blocked("a@example.com"))
		assert.True(t, c.Blocked("c@example.com"))
	})

	t.Run("并发计数不丢失", func(t *testing.T) {
		c := NewLoginAttemptCache(10, 1000, time.Minute)
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Failed("ann@example.com")
			}()
		}
		wg.Wait()
		assert.Equal(t, 51, c.Failed("ann@example.com"))
	})
}

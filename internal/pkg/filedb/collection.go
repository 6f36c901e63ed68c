package filedb

import (
	"Amity/internal/pkg/consts"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// Entity 文件存储中的实体，主键为单调递增的 uint64
type Entity interface {
	EntityID() uint64
	SetEntityID(id uint64)
}

type counterFile struct {
	LastID uint64 `json:"lastId"`
}

// Collection 单个实体集合。整个集合驻留内存，按 id 升序保存，
// 每次变更后整体重写对应的 JSON 文件。集合内部按 id 二分查找。
//
// 并发说明：锁只保证单次集合操作的原子性，跨多次调用的读改写
// 不提供一致性保证，与关系型后端不同，这是文件后端已知的取舍。
type Collection[T Entity] struct {
	mu          sync.Mutex
	name        string
	dataFile    string
	counterFile string
	items       []T
	lastID      uint64
}

// OpenCollection 从 dir 加载集合。数据文件不存在时按空集合初始化并落盘。
func OpenCollection[T Entity](dir, name string) (*Collection[T], error) {
	c := &Collection[T]{
		name:        name,
		dataFile:    filepath.Join(dir, name+"Storage.json"),
		counterFile: filepath.Join(dir, name+"IdStorage.json"),
	}

	if err := c.load(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collection[T]) load() error {
	raw, err := os.ReadFile(c.dataFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to read collection %s", c.name)
		}
		c.items = []T{}
	} else {
		if err = json.Unmarshal(raw, &c.items); err != nil {
			return errors.Wrapf(err, "corrupted collection file %s", c.dataFile)
		}
	}

	// 集合必须按 id 严格升序，二分查找依赖该不变式
	for i := 1; i < len(c.items); i++ {
		if c.items[i].EntityID() <= c.items[i-1].EntityID() {
			return errors.Errorf("collection %s is not sorted by id at index %d", c.name, i)
		}
	}

	rawCounter, err := os.ReadFile(c.counterFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to read counter of %s", c.name)
		}
		if len(c.items) > 0 {
			c.lastID = c.items[len(c.items)-1].EntityID()
		}
		return c.flushAll()
	}

	var counter counterFile
	if err = json.Unmarshal(rawCounter, &counter); err != nil {
		return errors.Wrapf(err, "corrupted counter file %s", c.counterFile)
	}
	c.lastID = counter.LastID

	if len(c.items) > 0 && c.items[len(c.items)-1].EntityID() > c.lastID {
		return errors.Errorf("counter of %s is behind the collection", c.name)
	}
	return nil
}

// flushData 整体重写集合文件
func (c *Collection[T]) flushData() error {
	raw, err := json.Marshal(c.items)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal collection %s", c.name)
	}
	if err = os.WriteFile(c.dataFile, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed to flush collection %s", c.name)
	}
	return nil
}

func (c *Collection[T]) flushCounter() error {
	raw, err := json.Marshal(counterFile{LastID: c.lastID})
	if err != nil {
		return errors.Wrapf(err, "failed to marshal counter of %s", c.name)
	}
	if err = os.WriteFile(c.counterFile, raw, 0o644); err != nil {
		return errors.Wrapf(err, "failed to flush counter of %s", c.name)
	}
	return nil
}

func (c *Collection[T]) flushAll() error {
	if err := c.flushData(); err != nil {
		return err
	}
	return c.flushCounter()
}

// search 返回第一个 id >= target 的下标
func (c *Collection[T]) search(id uint64) int {
	return sort.Search(len(c.items), func(i int) bool {
		return c.items[i].EntityID() >= id
	})
}

// Insert 分配下一个 id 并追加到集合末尾。新 id 必然大于既有所有 id，
// 排序不变式由此保持。
func (c *Collection[T]) Insert(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastID++
	item.SetEntityID(c.lastID)
	c.items = append(c.items, item)
	return c.flushAll()
}

// FindByID 二分查找，未命中返回零值与 false
func (c *Collection[T]) FindByID(id uint64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i := c.search(id)
	if i >= len(c.items) || c.items[i].EntityID() != id {
		return zero, false
	}
	return c.items[i], true
}

// Find 线性查找第一个满足条件的元素
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	return zero, false
}

// Filter 返回所有满足条件的元素
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Count 统计满足条件的元素个数
func (c *Collection[T]) Count(pred func(T) bool) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int64
	for _, item := range c.items {
		if pred(item) {
			count++
		}
	}
	return count
}

// Update 对指定 id 的元素应用 mutate 并落盘，未找到返回 false
func (c *Collection[T]) Update(id uint64, mutate func(T)) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.search(id)
	if i >= len(c.items) || c.items[i].EntityID() != id {
		return false, nil
	}
	mutate(c.items[i])
	return true, c.flushData()
}

// Delete 按 id 删除，返回是否删除成功
func (c *Collection[T]) Delete(id uint64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.search(id)
	if i >= len(c.items) || c.items[i].EntityID() != id {
		return false, nil
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true, c.flushData()
}

// DeleteWhere 删除所有满足条件的元素，返回删除数量
func (c *Collection[T]) DeleteWhere(pred func(T) bool) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	var deleted int64
	for _, item := range c.items {
		if pred(item) {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	c.items = kept
	if deleted == 0 {
		return 0, nil
	}
	return deleted, c.flushData()
}

// Page 按 id 降序取一页。lastID 为 0 时从最新一条开始；lastID 不存在于
// 集合中时视为没有更多数据，返回空页而不是错误。
func (c *Collection[T]) Page(size int, lastID uint64) (items []T, hasNext bool, nextCursor int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx := len(c.items)
	if lastID != 0 {
		i := c.search(lastID)
		if i >= len(c.items) || c.items[i].EntityID() != lastID {
			return []T{}, false, consts.NoMoreCursor
		}
		idx = i
	}

	items = make([]T, 0, size)
	for size > 0 && idx > 0 {
		idx--
		items = append(items, c.items[idx])
		size--
	}

	hasNext = idx > 0
	if !hasNext || idx >= len(c.items) {
		return items, hasNext, consts.NoMoreCursor
	}
	return items, hasNext, int64(c.items[idx].EntityID())
}

// Len 集合当前元素数
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

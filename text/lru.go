// SPDX-License-Identifier: Unlicense OR MIT

package text

type sizeCache struct {
	m          map[string]*sizeElem
	head, tail *sizeElem
}

type sizeElem struct {
	next, prev *sizeElem
	key        string
	size       Size
}

const maxSize = 1000

func (c *sizeCache) Get(k string) (Size, bool) {
	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.insert(e)
		return e.size, true
	}
	return Size{}, false
}

func (c *sizeCache) Put(k string, sz Size) {
	if c.m == nil {
		c.m = make(map[string]*sizeElem)
		c.head = new(sizeElem)
		c.tail = new(sizeElem)
		c.head.prev = c.tail
		c.tail.next = c.head
	}
	if e, ok := c.m[k]; ok {
		e.size = sz
		c.remove(e)
		c.insert(e)
		return
	}
	val := &sizeElem{key: k, size: sz}
	c.m[k] = val
	c.insert(val)
	if len(c.m) > maxSize {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

func (c *sizeCache) remove(e *sizeElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *sizeCache) insert(e *sizeElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}

package lifecycle

import (
	"context"
	"sync"

	"github.com/osokin-dev/gymcart/internal/domain"
)

// keyedMutex сериализует мутации по идентификатору сущности. Второй запрос
// по тому же id встает в очередь и после захвата видит итог первого (успех
// или откат), а не гонится со снимком устаревшего статуса. Отмена контекста
// во время ожидания превращается в ConcurrentMutationError.
type keyedMutex struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		slots: make(map[string]chan struct{}),
	}
}

func (k *keyedMutex) lock(ctx context.Context, key string) error {
	k.mu.Lock()
	slot, ok := k.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		k.slots[key] = slot
	}
	k.mu.Unlock()

	// свободный слот захватывается сразу, даже с уже отмененным контекстом.
	select {
	case slot <- struct{}{}:
		return nil
	default:
	}

	select {
	case slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return domain.NewConcurrentMutationError(key)
	}
}

func (k *keyedMutex) unlock(key string) {
	k.mu.Lock()
	slot := k.slots[key]
	k.mu.Unlock()
	<-slot
}

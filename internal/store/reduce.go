package store

import "campaignhub/internal/domain"

// Reduce computes the next state. It is total: unknown kinds and unknown ids
// return the previous state unchanged. The previous Items slice is never
// written to.
func Reduce[T domain.Entity](prev State[T], a Action[T]) State[T] {
	next := prev
	switch a.Kind {
	case KindSetAll:
		next.Items = append(make([]T, 0, len(a.Items)), a.Items...)
	case KindAdd:
		items := make([]T, len(prev.Items), len(prev.Items)+1)
		copy(items, prev.Items)
		next.Items = append(items, a.Item)
	case KindUpdate:
		i := prev.index(a.Item.EntityID())
		if i < 0 {
			return prev
		}
		items := make([]T, len(prev.Items))
		copy(items, prev.Items)
		items[i] = a.Item
		next.Items = items
	case KindRemove:
		i := prev.index(a.ID)
		if i < 0 {
			return prev
		}
		items := make([]T, 0, len(prev.Items)-1)
		items = append(items, prev.Items[:i]...)
		next.Items = append(items, prev.Items[i+1:]...)
	case KindSetLoading:
		next.Loading = a.Loading
	case KindSetError:
		if a.Err == nil {
			next.Err = nil
		} else {
			msg := *a.Err
			next.Err = &msg
		}
	}
	return next
}

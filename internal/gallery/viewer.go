package gallery

// Key names follow the DOM KeyboardEvent values the frontend forwards.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// ScrollLock is the capability the lightbox holds while open. The document
// scroll stays suspended between Acquire and Release. Implementations must
// tolerate Release without a matching Acquire.
type ScrollLock interface {
	Acquire()
	Release()
}

type noopScrollLock struct{}

func (noopScrollLock) Acquire() {}
func (noopScrollLock) Release() {}

// Viewer drives the filterable portfolio grid and its lightbox. It owns no
// rendering; it only transitions state in response to user events. All
// operations are total: an empty collection or an unknown category never
// produces an error, just an empty view.
type Viewer struct {
	images   []Image
	category string
	filtered []Image

	open      bool
	openIndex int

	lock   ScrollLock
	locked bool
}

func NewViewer(images []Image, lock ScrollLock) *Viewer {
	if lock == nil {
		lock = noopScrollLock{}
	}
	v := &Viewer{
		images:   images,
		category: CategoryAll,
		lock:     lock,
	}
	v.refilter()
	return v
}

// SetCategory switches the active filter and recomputes the visible set.
// An unknown category id yields an empty set. A category change closes an
// open lightbox: the filtered set the open index pointed into no longer
// exists, so re-resolving the index against the new set would show the
// user an arbitrary image.
func (v *Viewer) SetCategory(categoryID string) {
	if categoryID == "" {
		categoryID = CategoryAll
	}
	if v.open {
		v.Close()
	}
	v.category = categoryID
	v.refilter()
}

func (v *Viewer) refilter() {
	if v.category == CategoryAll {
		v.filtered = append([]Image(nil), v.images...)
		return
	}
	filtered := make([]Image, 0, len(v.images))
	for _, img := range v.images {
		if img.CategoryID == v.category {
			filtered = append(filtered, img)
		}
	}
	v.filtered = filtered
}

func (v *Viewer) SelectedCategory() string {
	return v.category
}

// FilteredImages returns the current visible set in source order.
func (v *Viewer) FilteredImages() []Image {
	return v.filtered
}

// OpenAt opens the lightbox on the image at index within the filtered set.
// Opening while already open just moves the selection; the scroll lock is
// held once, not stacked. An out-of-range index is ignored.
func (v *Viewer) OpenAt(index int) {
	if index < 0 || index >= len(v.filtered) {
		return
	}
	if !v.locked {
		v.lock.Acquire()
		v.locked = true
	}
	v.open = true
	v.openIndex = index
}

// Close clears the lightbox and releases the scroll lock. Safe to call in
// any state, including before any open.
func (v *Viewer) Close() {
	v.open = false
	v.openIndex = 0
	if v.locked {
		v.lock.Release()
		v.locked = false
	}
}

func (v *Viewer) IsOpen() bool {
	return v.open
}

// OpenImage returns the image shown in the lightbox, its index in the
// filtered set, and whether the lightbox is open.
func (v *Viewer) OpenImage() (Image, int, bool) {
	if !v.open {
		return Image{}, 0, false
	}
	return v.filtered[v.openIndex], v.openIndex, true
}

// Previous moves the lightbox one image back, wrapping from the first to
// the last. No-op when the lightbox is closed.
func (v *Viewer) Previous() {
	if !v.open || len(v.filtered) == 0 {
		return
	}
	if v.openIndex > 0 {
		v.openIndex--
	} else {
		v.openIndex = len(v.filtered) - 1
	}
}

// Next moves the lightbox one image forward, wrapping from the last to
// the first. No-op when the lightbox is closed.
func (v *Viewer) Next() {
	if !v.open || len(v.filtered) == 0 {
		return
	}
	if v.openIndex < len(v.filtered)-1 {
		v.openIndex++
	} else {
		v.openIndex = 0
	}
}

// HandleKey dispatches a keyboard event. Bindings are inert while the
// lightbox is closed.
func (v *Viewer) HandleKey(key string) {
	if !v.open {
		return
	}
	switch key {
	case KeyEscape:
		v.Close()
	case KeyArrowLeft:
		v.Previous()
	case KeyArrowRight:
		v.Next()
	}
}

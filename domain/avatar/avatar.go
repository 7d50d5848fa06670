// Package avatar enumerates the image variants the metadata source can
// serve for a player.
package avatar

// Kind is a camera framing of the player's avatar.
type Kind string

const (
	KindHeadShot  Kind = "head-shot"
	KindBust      Kind = "avatar-bust"
	KindThumbnail Kind = "avatar-thumbnail"
)

// Size is a square pixel dimension. Only the enumerated values are
// recognized by the metadata source.
type Size int

const (
	Size48  Size = 48
	Size60  Size = 60
	Size100 Size = 100
	Size150 Size = 150
	Size180 Size = 180
	Size352 Size = 352
	Size420 Size = 420
)

func Kinds() []Kind {
	return []Kind{KindHeadShot, KindBust, KindThumbnail}
}

func Sizes() []Size {
	return []Size{Size48, Size60, Size100, Size150, Size180, Size352, Size420}
}

// Request identifies one kind x size cell.
type Request struct {
	Kind Kind `json:"kind"`
	Size Size `json:"size"`
}

// AllRequests expands the full kind x size grid, in stable order.
func AllRequests() []Request {
	var reqs []Request
	for _, k := range Kinds() {
		for _, s := range Sizes() {
			reqs = append(reqs, Request{Kind: k, Size: s})
		}
	}
	return reqs
}

// Image is the resolved handle for one cell. Failed marks a cell whose
// sub-fetch did not complete; sibling cells stay usable.
type Image struct {
	URL    string `json:"url"`
	Failed bool   `json:"failed,omitempty"`
}

// Set maps every requested cell to its resolved image.
type Set map[Kind]map[Size]Image

func NewSet() Set {
	return make(Set, len(Kinds()))
}

func (s Set) Put(req Request, img Image) {
	if _, ok := s[req.Kind]; !ok {
		s[req.Kind] = make(map[Size]Image, len(Sizes()))
	}
	s[req.Kind][req.Size] = img
}

func (s Set) Get(req Request) (Image, bool) {
	img, ok := s[req.Kind][req.Size]
	return img, ok
}

package domain

// PictureStore persists uploaded profile pictures and returns the public URL
// the stored file is served from (infrastructure port).
type PictureStore interface {
	Save(originalFilename string, data []byte) (url string, err error)
}

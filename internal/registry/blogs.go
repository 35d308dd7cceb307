package registry

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/NOMAN1802/ibooking/internal/apperr"
	"github.com/NOMAN1802/ibooking/internal/models"
	"github.com/NOMAN1802/ibooking/internal/store"
)

type Blogs struct {
	col store.Collection
	now func() time.Time
}

func NewBlogs(col store.Collection) *Blogs {
	return &Blogs{col: col, now: time.Now}
}

// Create stamps the publication date server-side.
func (b *Blogs) Create(ctx context.Context, blog models.Blog) (store.InsertResult, error) {
	if blog.Type == "" {
		blog.Type = models.TypeStandard
	}
	if _, err := models.ParseListingType(string(blog.Type)); err != nil {
		return store.InsertResult{}, apperr.Validation(err.Error())
	}
	blog.Date = b.now().UTC()

	res, err := b.col.InsertOne(ctx, blog)
	if err != nil {
		return store.InsertResult{}, apperr.Persistence("insert blog", err)
	}
	return res, nil
}

func (b *Blogs) All(ctx context.Context) ([]models.Blog, error) {
	return b.find(ctx, bson.M{})
}

func (b *Blogs) Featured(ctx context.Context) ([]models.Blog, error) {
	return b.find(ctx, bson.M{"type": models.TypeFeatured})
}

func (b *Blogs) find(ctx context.Context, filter bson.M) ([]models.Blog, error) {
	blogs := []models.Blog{}
	if err := b.col.Find(ctx, filter, &blogs); err != nil {
		return nil, apperr.Persistence("find blogs", err)
	}
	return blogs, nil
}

func (b *Blogs) Get(ctx context.Context, id string) (models.Blog, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Blog{}, err
	}
	var blog models.Blog
	switch err := b.col.FindOne(ctx, store.ByID(oid), &blog); {
	case err == nil:
		return blog, nil
	case err == store.ErrNotFound:
		return models.Blog{}, apperr.NotFound("blog not found")
	default:
		return models.Blog{}, apperr.Persistence("find blog", err)
	}
}

package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
	repo "github.com/aditrahmn/contact-management-api/internal/domain/repository"
	"github.com/aditrahmn/contact-management-api/pkg/response"
)

type ContactService struct {
	Repo    repo.ContactRepository
	Logger  *logrus.Logger
	ES      *elasticsearch.Client
	ESIndex string
}

func NewContactService(r repo.ContactRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ContactService {
	return &ContactService{Repo: r, Logger: logger, ES: es, ESIndex: esIndex}
}

type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (s *ContactService) Create(ctx context.Context, user *entity.User, in ContactInput) (*entity.Contact, error) {
	c := &entity.Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Username:  user.Username,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.indexContact(ctx, c)
	return c, nil
}

// CheckContact is the ownership-check primitive: it resolves a contact only
// when it belongs to the given user. Address operations reuse it before
// touching anything nested.
func (s *ContactService) CheckContact(ctx context.Context, contactID int64, username string) (*entity.Contact, error) {
	c, err := s.Repo.FindOwned(ctx, contactID, username)
	if err != nil {
		return nil, ErrContactNotFound
	}
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, user *entity.User, contactID int64) (*entity.Contact, error) {
	return s.CheckContact(ctx, contactID, user.Username)
}

func (s *ContactService) Update(ctx context.Context, user *entity.User, contactID int64, in ContactInput) (*entity.Contact, error) {
	c, err := s.CheckContact(ctx, contactID, user.Username)
	if err != nil {
		return nil, err
	}

	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Email = in.Email
	c.Phone = in.Phone

	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, err
	}
	s.indexContact(ctx, c)
	return c, nil
}

func (s *ContactService) Remove(ctx context.Context, user *entity.User, contactID int64) (*entity.Contact, error) {
	c, err := s.CheckContact(ctx, contactID, user.Username)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Delete(ctx, c.ID); err != nil {
		return nil, err
	}
	s.removeContactDoc(ctx, c.ID)
	return c, nil
}

// maxSearchSize bounds the LIMIT a caller can request per page.
const maxSearchSize = 100

type SearchContactInput struct {
	Name  string
	Email string
	Phone string
	Page  int
	Size  int
}

// Search applies the conjunctive filters scoped to the caller and pages with
// skip = (page-1)*size. total_page is ceil(total/size).
func (s *ContactService) Search(ctx context.Context, user *entity.User, in SearchContactInput) ([]*entity.Contact, response.Paging, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.Size < 1 {
		in.Size = 10
	}
	if in.Size > maxSearchSize {
		in.Size = maxSearchSize
	}

	f := repo.ContactFilter{Name: in.Name, Email: in.Email, Phone: in.Phone}
	offset := (in.Page - 1) * in.Size

	results, err := s.Repo.Search(ctx, user.Username, f, in.Size, offset)
	if err != nil {
		return nil, response.Paging{}, err
	}
	total, err := s.Repo.CountSearch(ctx, user.Username, f)
	if err != nil {
		return nil, response.Paging{}, err
	}

	paging := response.Paging{
		CurrentPage: in.Page,
		Size:        in.Size,
		TotalPage:   int((total + int64(in.Size) - 1) / int64(in.Size)),
	}
	return results, paging, nil
}

// QuickSearch is the secondary-index search over the mirrored contact
// documents. It never touches Postgres and is strictly best-effort.
func (s *ContactService) QuickSearch(ctx context.Context, username, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"first_name^2", "last_name^2", "email", "phone"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"username": username},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, errors.New("search response: " + res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

// indexContact mirrors a contact into the secondary index. Failures log and
// never fail the request.
func (s *ContactService) indexContact(ctx context.Context, c *entity.Contact) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         c.ID,
		"username":   c.Username,
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"email":      c.Email,
		"phone":      c.Phone,
		"updated_at": c.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESIndex,
		DocumentID: strconv.FormatInt(c.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cctx, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("contact_id", c.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("contact_id", c.ID).Warn("es index response error")
	}
}

func (s *ContactService) removeContactDoc(ctx context.Context, id int64) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: strconv.FormatInt(id, 10)}
	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(cctx, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("contact_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}

package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aditrahmn/contact-management-api/internal/domain/entity"
	repo "github.com/aditrahmn/contact-management-api/internal/domain/repository"
)

// AddressService nests under ContactService: every operation re-confirms that
// the contact belongs to the caller before the address is touched at all.
type AddressService struct {
	Repo     repo.AddressRepository
	Contacts *ContactService
	Logger   *logrus.Logger
}

func NewAddressService(r repo.AddressRepository, contacts *ContactService, logger *logrus.Logger) *AddressService {
	return &AddressService{Repo: r, Contacts: contacts, Logger: logger}
}

type AddressInput struct {
	Street     string
	City       string
	Province   string
	Country    string
	PostalCode string
}

func (s *AddressService) Create(ctx context.Context, user *entity.User, contactID int64, in AddressInput) (*entity.Address, error) {
	if _, err := s.Contacts.CheckContact(ctx, contactID, user.Username); err != nil {
		return nil, err
	}

	a := &entity.Address{
		Street:     in.Street,
		City:       in.City,
		Province:   in.Province,
		Country:    in.Country,
		PostalCode: in.PostalCode,
		ContactID:  contactID,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Get(ctx context.Context, user *entity.User, contactID, addressID int64) (*entity.Address, error) {
	if _, err := s.Contacts.CheckContact(ctx, contactID, user.Username); err != nil {
		return nil, err
	}
	return s.checkAddress(ctx, addressID, contactID)
}

func (s *AddressService) Update(ctx context.Context, user *entity.User, contactID, addressID int64, in AddressInput) (*entity.Address, error) {
	if _, err := s.Contacts.CheckContact(ctx, contactID, user.Username); err != nil {
		return nil, err
	}
	a, err := s.checkAddress(ctx, addressID, contactID)
	if err != nil {
		return nil, err
	}

	a.Street = in.Street
	a.City = in.City
	a.Province = in.Province
	a.Country = in.Country
	a.PostalCode = in.PostalCode

	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Remove(ctx context.Context, user *entity.User, contactID, addressID int64) error {
	if _, err := s.Contacts.CheckContact(ctx, contactID, user.Username); err != nil {
		return err
	}
	a, err := s.checkAddress(ctx, addressID, contactID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(ctx, a.ID)
}

func (s *AddressService) List(ctx context.Context, user *entity.User, contactID int64) ([]*entity.Address, error) {
	if _, err := s.Contacts.CheckContact(ctx, contactID, user.Username); err != nil {
		return nil, err
	}
	return s.Repo.ListByContact(ctx, contactID)
}

func (s *AddressService) checkAddress(ctx context.Context, addressID, contactID int64) (*entity.Address, error) {
	a, err := s.Repo.FindByContact(ctx, addressID, contactID)
	if err != nil {
		return nil, ErrAddressNotFound
	}
	return a, nil
}

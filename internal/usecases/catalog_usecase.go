package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/volatiletech/null/v8"

	"e-commerce.backend/internal/domain/entities"
	domainerrors "e-commerce.backend/internal/domain/errors"
	"e-commerce.backend/internal/domain/repositories"
)

// Empty listing messages
const (
	MsgNoOwnGoods      = "Nothing"
	MsgSellerHasNone   = "This seller without goods!"
	MsgNoSearchResults = "Goods to params are not found"
)

// CatalogUsecase handles goods
type CatalogUsecase struct {
	goodRepo     repositories.GoodRepository
	categoryRepo repositories.CategoryRepository
	uow          repositories.UnitOfWork
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(
	goodRepo repositories.GoodRepository,
	categoryRepo repositories.CategoryRepository,
	uow repositories.UnitOfWork,
) *CatalogUsecase {
	return &CatalogUsecase{
		goodRepo:     goodRepo,
		categoryRepo: categoryRepo,
		uow:          uow,
	}
}

// AddGood lists a good for a verified seller
func (u *CatalogUsecase) AddGood(ctx context.Context, seller *entities.User, input *entities.AddGoodInput) (string, error) {
	if !seller.IsSeller() {
		return "", domainerrors.NotSeller()
	}
	if !seller.IsVerified {
		return "", domainerrors.SellerNotVerified()
	}
	if input.Price == nil || !validPrice(*input.Price) {
		return "", domainerrors.Validation("good_price must be greater than or equal to 0")
	}

	category, err := u.categoryRepo.GetByName(ctx, input.Category)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.CategoryNotExists(string(input.Category))
		}
		return "", domainerrors.GoodsInternal(err)
	}

	good := &entities.Good{
		Name:       input.Name,
		SellerID:   seller.ID,
		CategoryID: category.ID,
		UnitPrice:  *input.Price,
	}
	if err := u.goodRepo.Create(ctx, good); err != nil {
		return "", domainerrors.GoodsInternal(err)
	}

	return fmt.Sprintf("Good %s was added", input.Name), nil
}

func validPrice(p float64) bool {
	return p >= 0 && !math.IsInf(p, 1)
}

// ListMyGoods lists the caller's distinct goods
func (u *CatalogUsecase) ListMyGoods(ctx context.Context, seller *entities.User) (entities.ListResult[entities.GoodView], error) {
	goods, err := u.goodRepo.ListBySeller(ctx, seller.ID)
	if err != nil {
		return entities.ListResult[entities.GoodView]{}, err
	}
	return entities.NewListResult(goods, MsgNoOwnGoods), nil
}

// ListBySeller lists goods of any seller
func (u *CatalogUsecase) ListBySeller(ctx context.Context, sellerID int64) (entities.ListResult[entities.SellerGoodView], error) {
	goods, err := u.goodRepo.ListBySellerWithName(ctx, sellerID)
	if err != nil {
		return entities.ListResult[entities.SellerGoodView]{}, err
	}
	return entities.NewListResult(goods, MsgSellerHasNone), nil
}

// Search finds goods priced within [MinPrice, MaxPrice]. Without MaxPrice
// the bound is the most expensive good of the category filter.
func (u *CatalogUsecase) Search(ctx context.Context, search entities.GoodSearch) (entities.ListResult[entities.SellerGoodView], error) {
	maxPrice := search.MaxPrice
	if !maxPrice.Valid {
		probe, err := u.goodRepo.MaxPrice(ctx, search.Category)
		if err != nil {
			return entities.ListResult[entities.SellerGoodView]{}, domainerrors.GoodsNotExist(err)
		}
		if !probe.Valid {
			return entities.NewListResult[entities.SellerGoodView](nil, MsgNoSearchResults), nil
		}
		maxPrice = null.Float64From(probe.Float64)
	}

	goods, err := u.goodRepo.Search(ctx, search.Category, search.MinPrice, maxPrice.Float64)
	if err != nil {
		return entities.ListResult[entities.SellerGoodView]{}, domainerrors.GoodsNotExist(err)
	}
	return entities.NewListResult(goods, MsgNoSearchResults), nil
}

// ChangePrice sets the unit price of a good
func (u *CatalogUsecase) ChangePrice(ctx context.Context, id int64, price float64) (string, error) {
	if !validPrice(price) {
		return "", domainerrors.Validation("price must be greater than or equal to 0")
	}
	if err := u.goodRepo.UpdatePrice(ctx, id, price); err != nil {
		return "", err
	}
	return fmt.Sprintf("Price of good #%d was changed", id), nil
}

// DeleteGood removes a good and the order lines that reference it
func (u *CatalogUsecase) DeleteGood(ctx context.Context, id int64) (string, error) {
	var name string
	err := u.uow.Do(ctx, func(ctx context.Context) error {
		good, err := u.goodRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.GoodNotFound(id)
			}
			return err
		}
		name = good.Name

		if err := u.goodRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.GoodNotFound(id)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Good '%s' was deleted with market", name), nil
}

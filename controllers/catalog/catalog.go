package catalog

import (
	"net/url"

	"tms-lite/logger"
	catalogService "tms-lite/services/catalog"
	catalogTypes "tms-lite/types/catalog"
	"tms-lite/utils"

	"github.com/gofiber/fiber/v2"
)

// CatalogController serves the trending designer catalog
type CatalogController struct {
	Catalog *catalogService.Service
}

func NewCatalogController(catalog *catalogService.Service) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

// Index handles GET /
func (cc *CatalogController) Index(c *fiber.Ctx) error {
	brands := cc.Catalog.Brands()
	defaultBrand := ""
	if len(brands) > 0 {
		defaultBrand = brands[0]
	}
	return c.Render("catalog_index", fiber.Map{
		"Brands":       brands,
		"DefaultBrand": defaultBrand,
	})
}

// Trending handles GET /trending
func (cc *CatalogController) Trending(c *fiber.Ctx) error {
	items, err := cc.Catalog.ListTrending(c.UserContext())
	if err != nil {
		logger.Error("Failed to list trending items", err)
		return utils.SendError(c, err)
	}
	return c.JSON(catalogTypes.NewTrendingItems(items))
}

// ByBrand handles GET /brand/:brand
func (cc *CatalogController) ByBrand(c *fiber.Ctx) error {
	brand, err := url.PathUnescape(c.Params("brand"))
	if err != nil {
		return utils.BadRequest(c, "Invalid brand")
	}

	items, err := cc.Catalog.ListByBrand(c.UserContext(), brand)
	if err != nil {
		logger.Error("Failed to list brand items", err)
		return utils.SendError(c, err)
	}
	return c.JSON(catalogTypes.NewBrandItems(items))
}

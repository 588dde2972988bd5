package handlers

import (
	"github.com/gin-gonic/gin"

	"idn-area/internal/areacode"
	"idn-area/internal/pagination"
	"idn-area/internal/response"
	"idn-area/internal/services"
)

// Handler serves the area endpoints.
type Handler struct {
	Provinces   services.ProvinceService
	Regencies   services.RegencyService
	Districts   services.DistrictService
	Villages    services.VillageService
	Islands     services.IslandService
	Transformer *response.Transformer
	// MaxLimit bounds the limit query parameter; zero means pagination.MaxLimit.
	MaxLimit int
}

func (h *Handler) maxLimit() int {
	if h.MaxLimit > 0 {
		return h.MaxLimit
	}
	return pagination.MaxLimit
}

// pathCode validates the :code path parameter and writes a 400 on failure.
func pathCode(c *gin.Context, kind areacode.Kind) (string, bool) {
	code := c.Param("code")
	if err := validateCode(kind, code); err != nil {
		RespondDomainError(c, err)
		return "", false
	}
	return code, true
}

func (h *Handler) ListProvinces(c *gin.Context) {
	q, err := validateList(c.Request.URL.Query(), provinceList, h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Provinces.Find(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/provinces", nil))
}

func (h *Handler) GetProvince(c *gin.Context) {
	code, ok := pathCode(c, areacode.Province)
	if !ok {
		return
	}
	province, err := h.Provinces.FindByCode(c.Request.Context(), code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondSingle(c, h.Transformer, province)
}

func (h *Handler) ListRegencies(c *gin.Context) {
	q, err := validateList(c.Request.URL.Query(), regencyList, h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Regencies.Find(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/regencies", nil))
}

// ListProvinceRegencies serves /provinces/:code/regencies.
func (h *Handler) ListProvinceRegencies(c *gin.Context) {
	code, ok := pathCode(c, areacode.Province)
	if !ok {
		return
	}
	q, err := validateList(c.Request.URL.Query(), regencyList.nested(), h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Regencies.FindByProvince(c.Request.Context(), code, q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/provinces/{code}/regencies", map[string]string{"code": code}))
}

func (h *Handler) GetRegency(c *gin.Context) {
	code, ok := pathCode(c, areacode.Regency)
	if !ok {
		return
	}
	regency, err := h.Regencies.FindByCode(c.Request.Context(), code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondSingle(c, h.Transformer, regency)
}

func (h *Handler) ListDistricts(c *gin.Context) {
	q, err := validateList(c.Request.URL.Query(), districtList, h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Districts.Find(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/districts", nil))
}

// ListRegencyDistricts serves /regencies/:code/districts.
func (h *Handler) ListRegencyDistricts(c *gin.Context) {
	code, ok := pathCode(c, areacode.Regency)
	if !ok {
		return
	}
	q, err := validateList(c.Request.URL.Query(), districtList.nested(), h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Districts.FindByRegency(c.Request.Context(), code, q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/regencies/{code}/districts", map[string]string{"code": code}))
}

func (h *Handler) GetDistrict(c *gin.Context) {
	code, ok := pathCode(c, areacode.District)
	if !ok {
		return
	}
	district, err := h.Districts.FindByCode(c.Request.Context(), code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondSingle(c, h.Transformer, district)
}

func (h *Handler) ListVillages(c *gin.Context) {
	q, err := validateList(c.Request.URL.Query(), villageList, h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Villages.Find(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/villages", nil))
}

// ListDistrictVillages serves /districts/:code/villages.
func (h *Handler) ListDistrictVillages(c *gin.Context) {
	code, ok := pathCode(c, areacode.District)
	if !ok {
		return
	}
	q, err := validateList(c.Request.URL.Query(), villageList.nested(), h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Villages.FindByDistrict(c.Request.Context(), code, q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/districts/{code}/villages", map[string]string{"code": code}))
}

func (h *Handler) GetVillage(c *gin.Context) {
	code, ok := pathCode(c, areacode.Village)
	if !ok {
		return
	}
	village, err := h.Villages.FindByCode(c.Request.Context(), code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondSingle(c, h.Transformer, village)
}

func (h *Handler) ListIslands(c *gin.Context) {
	q, err := validateList(c.Request.URL.Query(), islandList, h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Islands.Find(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/islands", nil))
}

// ListRegencyIslands serves /regencies/:code/islands.
func (h *Handler) ListRegencyIslands(c *gin.Context) {
	code, ok := pathCode(c, areacode.Regency)
	if !ok {
		return
	}
	q, err := validateList(c.Request.URL.Query(), islandList.nested(), h.maxLimit())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	page, err := h.Islands.FindByRegency(c.Request.Context(), code, q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondPage(c, h.Transformer, page, linkTemplate(c, "/regencies/{code}/islands", map[string]string{"code": code}))
}

func (h *Handler) GetIsland(c *gin.Context) {
	code, ok := pathCode(c, areacode.Island)
	if !ok {
		return
	}
	island, err := h.Islands.FindByCode(c.Request.Context(), code)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	respondSingle(c, h.Transformer, island)
}

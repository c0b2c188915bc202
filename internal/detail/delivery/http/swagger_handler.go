package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// StartSession godoc
// @Summary Start a detail session
// @Description Open a product-detail session and fetch the product snapshot once
// @Tags Detail
// @Produce json
// @Param productID path string true "Product ID"
// @Success 201 {object} object{success=bool,data=object}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/detail/{productID}/sessions [post]
func (h *DetailHandler) StartSessionDoc() {}

// GetSession godoc
// @Summary Get a detail session
// @Description Current selection state plus display-ready prices
// @Tags Detail
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/detail/sessions/{sessionID} [get]
func (h *DetailHandler) GetSessionDoc() {}

// UpdateSelection godoc
// @Summary Update variant selection
// @Description Overwrite color, size or pinned image
// @Tags Detail
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body object{color=string,size=string,image=string} true "Selection fields"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/detail/sessions/{sessionID}/selection [put]
func (h *DetailHandler) UpdateSelectionDoc() {}

// StepQuantity godoc
// @Summary Step the quantity
// @Description Adjust quantity by a delta, clamped into [1, stock]
// @Tags Detail
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body object{delta=int} true "Quantity delta"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/detail/sessions/{sessionID}/quantity/step [post]
func (h *DetailHandler) StepQuantityDoc() {}

// SetQuantity godoc
// @Summary Set the quantity
// @Description Direct numeric entry, clamped into [1, stock]
// @Tags Detail
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param request body object{value=string} true "Raw quantity input"
// @Success 200 {object} object{success=bool,data=object}
// @Router /api/detail/sessions/{sessionID}/quantity [put]
func (h *DetailHandler) SetQuantityDoc() {}

// AddToCart godoc
// @Summary Add the selection to the cart
// @Description Resolves the add-to-cart purchase intent
// @Tags Purchase
// @Produce json
// @Param sessionID path string true "Session ID"
// @Security BearerAuth
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 401 {object} object{success=bool,error=string,data=object}
// @Failure 422 {object} object{success=bool,error=string}
// @Failure 502 {object} object{success=bool,error=string}
// @Router /api/detail/sessions/{sessionID}/cart [post]
func (h *DetailHandler) AddToCartDoc() {}

// BuyNow godoc
// @Summary Buy the selection now
// @Description Resolves the buy-now purchase intent into an order draft
// @Tags Purchase
// @Produce json
// @Param sessionID path string true "Session ID"
// @Security BearerAuth
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string,data=object}
// @Router /api/detail/sessions/{sessionID}/checkout [post]
func (h *DetailHandler) BuyNowDoc() {}

// ListReviews godoc
// @Summary List reviews
// @Description Reviews filtered by star rating; omit the filter for all
// @Tags Detail
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param rating query int false "Star rating filter (1-5)"
// @Success 200 {object} object{success=bool,data=object{reviews=array,total=int}}
// @Router /api/detail/sessions/{sessionID}/reviews [get]
func (h *DetailHandler) ListReviewsDoc() {}

package httpapi

import (
	"io"
	"net/http"

	"menulink/identity"
	"menulink/storefront-svc/internal/domain"
	"menulink/storefront-svc/internal/media"
	"menulink/storefront-svc/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	session, _ := identity.FromContext(r.Context())
	var rest domain.Restaurant
	if !decode(w, r, &rest) {
		return
	}
	if err := h.Restaurants.Create(r.Context(), session.User.ID, &rest); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusCreated, rest)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	var update domain.Restaurant
	if !decode(w, r, &update) {
		return
	}
	if err := h.Restaurants.UpdateProfile(r.Context(), rest, &update); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, update)
}

func (h *Handler) updateFooter(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	var footer domain.Footer
	if !decode(w, r, &footer) {
		return
	}
	if err := h.Restaurants.UpdateFooter(r.Context(), rest, footer); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, footer)
}

func (h *Handler) uploadRestaurantImage(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	contentType, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	purpose := domain.ImagePurpose(mux.Vars(r)["purpose"])
	asset, err := h.Images.UploadRestaurantImage(r.Context(), rest, purpose, contentType, data)
	if err != nil {
		h.fail(w, err, service.MsgUploadFailed)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

func (h *Handler) uploadItemImage(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	itemID, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	contentType, data, ok := h.readUpload(w, r)
	if !ok {
		return
	}
	asset, err := h.Images.UploadItemImage(r.Context(), rest, itemID, contentType, data)
	if err != nil {
		h.fail(w, err, service.MsgUploadFailed)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// readUpload reads the "image" part of a multipart upload.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (string, []byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxUploadBytes+1<<20)
	if err := r.ParseMultipartForm(h.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, media.ErrTooLarge.Error())
		return "", nil, false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return "", nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, service.MsgUploadFailed)
		return "", nil, false
	}
	return header.Header.Get("Content-Type"), data, true
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	categories, err := h.Menu.ListCategories(r.Context(), rest)
	if err != nil {
		h.fail(w, err, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) saveCategory(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	var category domain.Category
	if !decode(w, r, &category) {
		return
	}
	id, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	category.ID = id
	if err := h.Menu.SaveCategory(r.Context(), rest, &category); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, savedStatus(id), category)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(rest *domain.Restaurant, id int) error {
		return h.Menu.DeleteCategory(r.Context(), rest, id)
	})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	items, err := h.Menu.ListItems(r.Context(), rest)
	if err != nil {
		h.fail(w, err, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) saveItem(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	item := domain.MenuItem{IsAvailable: true}
	if !decode(w, r, &item) {
		return
	}
	id, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	item.ID = id
	if err := h.Menu.SaveItem(r.Context(), rest, &item); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, savedStatus(id), item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(rest *domain.Restaurant, id int) error {
		return h.Menu.DeleteItem(r.Context(), rest, id)
	})
}

func (h *Handler) listSizes(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	itemID, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	sizes, err := h.Menu.ListSizes(r.Context(), rest, itemID)
	if err != nil {
		h.fail(w, err, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, sizes)
}

func (h *Handler) saveSize(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	var size domain.Size
	if !decode(w, r, &size) {
		return
	}
	itemID, validItem := pathID(r, "id")
	sizeID, validSize := pathID(r, "sizeId")
	if !validItem || !validSize {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	size.ID, size.MenuItemID = sizeID, itemID
	if err := h.Menu.SaveSize(r.Context(), rest, &size); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, savedStatus(sizeID), size)
}

func (h *Handler) deleteSize(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	itemID, validItem := pathID(r, "id")
	sizeID, validSize := pathID(r, "sizeId")
	if !validItem || !validSize {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	if err := h.Menu.DeleteSize(r.Context(), rest, itemID, sizeID); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listExtras(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	extras, err := h.Menu.ListExtras(r.Context(), rest)
	if err != nil {
		h.fail(w, err, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, extras)
}

func (h *Handler) saveExtra(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	extra := domain.Extra{IsAvailable: true}
	if !decode(w, r, &extra) {
		return
	}
	id, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	extra.ID = id
	if err := h.Menu.SaveExtra(r.Context(), rest, &extra); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, savedStatus(id), extra)
}

func (h *Handler) deleteExtra(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(rest *domain.Restaurant, id int) error {
		return h.Menu.DeleteExtra(r.Context(), rest, id)
	})
}

func (h *Handler) listBranches(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	branches, err := h.Branches.ListBranches(r.Context(), rest)
	if err != nil {
		h.fail(w, err, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, branches)
}

func (h *Handler) saveBranch(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	branch := domain.Branch{IsActive: true}
	if !decode(w, r, &branch) {
		return
	}
	id, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	branch.ID = id
	if err := h.Branches.SaveBranch(r.Context(), rest, &branch); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, savedStatus(id), branch)
}

func (h *Handler) deleteBranch(w http.ResponseWriter, r *http.Request) {
	h.deleteByID(w, r, func(rest *domain.Restaurant, id int) error {
		return h.Branches.DeleteBranch(r.Context(), rest, id)
	})
}

func (h *Handler) toggleBranch(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	id, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	branch, err := h.Branches.ToggleBranch(r.Context(), rest, id)
	if err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, http.StatusOK, branch)
}

func (h *Handler) listAreas(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	branchID, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	areas, err := h.Branches.ListAreas(r.Context(), rest, branchID)
	if err != nil {
		h.fail(w, err, service.MsgLoadFailed)
		return
	}
	writeJSON(w, http.StatusOK, areas)
}

func (h *Handler) saveArea(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	area := domain.DeliveryArea{IsActive: true}
	if !decode(w, r, &area) {
		return
	}
	branchID, validBranch := pathID(r, "id")
	areaID, validArea := pathID(r, "areaId")
	if !validBranch || !validArea {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	area.ID, area.BranchID = areaID, branchID
	if err := h.Branches.SaveArea(r.Context(), rest, &area); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	writeJSON(w, savedStatus(areaID), area)
}

func (h *Handler) deleteArea(w http.ResponseWriter, r *http.Request) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	branchID, validBranch := pathID(r, "id")
	areaID, validArea := pathID(r, "areaId")
	if !validBranch || !validArea {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	if err := h.Branches.DeleteArea(r.Context(), rest, branchID, areaID); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteByID(w http.ResponseWriter, r *http.Request, remove func(*domain.Restaurant, int) error) {
	rest, ok := h.owned(w, r)
	if !ok {
		return
	}
	id, valid := pathID(r, "id")
	if !valid {
		writeError(w, http.StatusBadRequest, service.MsgInvalidInput)
		return
	}
	if err := remove(rest, id); err != nil {
		h.fail(w, err, service.MsgSaveFailed)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// savedStatus is 201 for a create (no id in the path) and 200 for an update.
func savedStatus(id int) int {
	if id == 0 {
		return http.StatusCreated
	}
	return http.StatusOK
}

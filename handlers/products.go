package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/anwarkhairul/Usaha-Bersama/ledger"
	"github.com/anwarkhairul/Usaha-Bersama/models"
	"github.com/anwarkhairul/Usaha-Bersama/outbox"
)

// ListProducts lists the store catalogue
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Product}
// @Router       /products [get]
// @Security     BearerAuth
func ListProducts(w http.ResponseWriter, r *http.Request) {
	products := Store.Products()
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// CreateProduct adds a product to the catalogue
// @Summary      Create product
// @Description  Adds a product. The initial stock valuation is booked as a capital-outlay journal entry.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        product  body      models.ProductInput  true  "Product contents"
// @Success      201      {object}  Response{data=models.Product}
// @Router       /products [post]
// @Security     BearerAuth
func CreateProduct(w http.ResponseWriter, r *http.Request) {
	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product := Store.AddProduct(models.Product{
		ID:            "PRD-" + uuid.NewString(),
		Name:          input.Name,
		Price:         input.Price,
		BuyPrice:      input.BuyPrice,
		Stock:         input.Stock,
		Category:      input.Category,
		Image:         input.Image,
		Description:   input.Description,
		SKU:           input.SKU,
		SupplierPhone: input.SupplierPhone,
	})
	Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityProducts, Key: product.ID, Value: product})

	if entry := ledger.InitialStockEntry(product, today()); entry != nil {
		Store.AddJournalEntries(*entry)
		Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityJournal, Key: entry.ID, Value: *entry})
	}

	writeJSON(w, http.StatusCreated, product)
}

// UpdateProduct updates a product
// @Summary      Update product
// @Description  Updates a product. A stock increase books a restock journal entry for the added quantity only.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Product ID"
// @Param        product  body      models.ProductInput  true  "Updated product contents"
// @Success      200      {object}  Response{data=models.Product}
// @Failure      404      {object}  Response{error=string}
// @Router       /products/{id} [put]
// @Security     BearerAuth
func UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var input models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	product := models.Product{
		ID:            id,
		Name:          input.Name,
		Price:         input.Price,
		BuyPrice:      input.BuyPrice,
		Stock:         input.Stock,
		Category:      input.Category,
		Image:         input.Image,
		Description:   input.Description,
		SKU:           input.SKU,
		SupplierPhone: input.SupplierPhone,
	}
	prev, err := Store.UpdateProduct(product)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntityProducts, Key: product.ID, Value: product})

	// Only the stock increase is capital newly spent; the rest was already
	// booked when the product was created or last restocked.
	if product.Stock > prev.Stock {
		if entry := ledger.RestockEntry(product, product.Stock-prev.Stock, today()); entry != nil {
			Store.AddJournalEntries(*entry)
			Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityJournal, Key: entry.ID, Value: *entry})
		}
	}

	writeJSON(w, http.StatusOK, product)
}

// DeleteProduct removes a product
// @Summary      Delete product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /products/{id} [delete]
// @Security     BearerAuth
func DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := Store.DeleteProduct(id); err != nil {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpDelete, Entity: outbox.EntityProducts, Key: id})
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

type purchaseInput struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

// Purchase buys from the cooperative store
// @Summary      Purchase product
// @Description  Creates a PENDING PURCHASE transaction for the caller and reserves the stock. Revenue and profit enter the books once the admin approves.
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        purchase  body      purchaseInput  true  "Product and quantity"
// @Success      201       {object}  Response{data=models.Transaction}
// @Failure      400       {object}  Response{error=string}
// @Router       /shop/purchase [post]
// @Security     BearerAuth
func Purchase(w http.ResponseWriter, r *http.Request) {
	var input purchaseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if input.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	product, err := Store.AdjustStock(input.ProductID, -input.Quantity)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	Queue.Enqueue(outbox.Job{Op: outbox.OpUpdate, Entity: outbox.EntityProducts, Key: product.ID, Value: product})

	amount := product.Price * input.Quantity
	profit := (product.Price - product.BuyPrice) * input.Quantity
	if profit < 0 {
		profit = 0
	}
	trx := Store.AddTransaction(models.Transaction{
		ID:          "TRX-" + uuid.NewString(),
		MemberID:    callerID(r),
		Date:        today(),
		Type:        models.TypePurchase,
		Amount:      amount,
		Profit:      profit,
		Status:      models.StatusPending,
		Description: fmt.Sprintf("Pembelian %s x%d", product.Name, input.Quantity),
	})
	Queue.Enqueue(outbox.Job{Op: outbox.OpInsert, Entity: outbox.EntityTransactions, Key: trx.ID, Value: trx})

	notify("Transaksi Baru Masuk",
		fmt.Sprintf("Anggota melakukan %s sebesar Rp%d. Harap verifikasi.", trx.Description, trx.Amount),
		models.NotifInfo, models.TargetAdmin)

	writeJSON(w, http.StatusCreated, trx)
}

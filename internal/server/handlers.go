package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OpenTraceLab/jep106/pkg/idcode"
	"github.com/OpenTraceLab/jep106/pkg/jep106"
)

type manufacturerResponse struct {
	Bank  uint8  `json:"bank"` // continuation count
	Code  uint8  `json:"code"`
	Label string `json:"label"`
	Name  string `json:"name,omitempty"`
	Found bool   `json:"found"`
}

type bankSummary struct {
	Bank     uint8 `json:"bank"`
	Assigned int   `json:"assigned"`
}

type idcodeResponse struct {
	Raw          string               `json:"raw"`
	Version      uint8                `json:"version"`
	PartNumber   uint16               `json:"part_number"`
	Valid        bool                 `json:"valid"`
	Manufacturer manufacturerResponse `json:"manufacturer"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newManufacturerResponse(id jep106.ID) manufacturerResponse {
	name := id.Name()
	return manufacturerResponse{
		Bank:  id.Bank,
		Code:  id.Code,
		Label: id.String(),
		Name:  name,
		Found: name != "",
	}
}

func (s *Server) listBanks(c *gin.Context) {
	limit := jep106.GetBankLimit()
	banks := make([]bankSummary, 0, limit)
	for b := 0; b < limit; b++ {
		banks = append(banks, bankSummary{Bank: uint8(b), Assigned: jep106.Assigned(uint8(b))})
	}
	c.JSON(http.StatusOK, gin.H{"limit": limit, "bank_size": jep106.BankSize, "banks": banks})
}

func (s *Server) getBank(c *gin.Context) {
	bank, err := jep106.ParseByte(c.Param("bank"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("bank: %v", err)})
		return
	}
	if int(bank) >= jep106.GetBankLimit() {
		c.JSON(http.StatusNotFound, errorResponse{Error: fmt.Sprintf("bank %d is beyond the table limit of %d", bank, jep106.GetBankLimit())})
		return
	}

	entries := jep106.Bank(bank)
	out := make([]manufacturerResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newManufacturerResponse(e.ID))
	}
	c.JSON(http.StatusOK, gin.H{"bank": bank, "manufacturers": out})
}

func (s *Server) getManufacturer(c *gin.Context) {
	bank, err := jep106.ParseByte(c.Param("bank"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("bank: %v", err)})
		return
	}
	code, err := jep106.ParseByte(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("code: %v", err)})
		return
	}
	if c.Query("parity") == "true" {
		code, _ = jep106.StripParity(code)
	}

	resp := newManufacturerResponse(jep106.ID{Bank: bank, Code: code})
	s.metrics.lookup("code", resp.Found)
	if !resp.Found {
		c.JSON(http.StatusNotFound, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) searchManufacturers(c *gin.Context) {
	q := c.Query("q")
	if strings.TrimSpace(q) == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "query parameter q is required"})
		return
	}

	matches := jep106.Search(q)
	s.metrics.lookup("search", len(matches) > 0)
	out := make([]manufacturerResponse, 0, len(matches))
	for _, e := range matches {
		out = append(out, newManufacturerResponse(e.ID))
	}
	body := gin.H{"query": q, "manufacturers": out}
	if len(matches) == 0 {
		hints := make([]manufacturerResponse, 0)
		for _, e := range jep106.Suggest(q, 3) {
			hints = append(hints, newManufacturerResponse(e.ID))
		}
		body["suggestions"] = hints
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) decodeIDCode(c *gin.Context) {
	raw, err := idcode.ParseHex(c.Param("idcode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	id := idcode.ParseIDCode(raw)
	resp := idcodeResponse{
		Raw:          fmt.Sprintf("0x%08X", id.Raw),
		Version:      id.Version,
		PartNumber:   id.PartNumber,
		Valid:        id.Valid(),
		Manufacturer: newManufacturerResponse(id.JEP106()),
	}
	s.metrics.lookup("idcode", resp.Manufacturer.Found)
	c.JSON(http.StatusOK, resp)
}

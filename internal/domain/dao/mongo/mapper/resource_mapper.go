package mapper

import (
	"time"

	"github.com/jrjohn/smart-waste-go/internal/domain/dao/mongo/document"
	"github.com/jrjohn/smart-waste-go/internal/domain/entity"
)

// BinMapper converts between Bin entity and BinDocument.
type BinMapper struct{}

// NewBinMapper creates a new BinMapper instance.
func NewBinMapper() *BinMapper {
	return &BinMapper{}
}

// ToDocument converts a Bin entity to a BinDocument.
func (m *BinMapper) ToDocument(bin *entity.Bin) *document.BinDocument {
	if bin == nil {
		return nil
	}
	return &document.BinDocument{
		NumericID:    bin.ID,
		Bin:          bin.Label,
		Locality:     bin.Locality,
		Landmark:     bin.Landmark,
		City:         bin.City,
		LoadType:     string(bin.LoadType),
		DriverEmail:  bin.DriverEmail,
		CyclePeriod:  string(bin.CyclePeriod),
		BestRoute:    bin.BestRoute,
		Latitude:     bin.Latitude,
		Longitude:    bin.Longitude,
		LocationName: bin.LocationName,
		CreatedAt:    bin.CreatedAt,
		UpdatedAt:    bin.UpdatedAt,
	}
}

// ToEntity converts a BinDocument to a Bin entity.
func (m *BinMapper) ToEntity(doc *document.BinDocument) *entity.Bin {
	if doc == nil {
		return nil
	}
	return &entity.Bin{
		ID:           doc.NumericID,
		Label:        doc.Bin,
		Locality:     doc.Locality,
		Landmark:     doc.Landmark,
		City:         doc.City,
		LoadType:     entity.LoadType(doc.LoadType),
		DriverEmail:  doc.DriverEmail,
		CyclePeriod:  entity.CyclePeriod(doc.CyclePeriod),
		BestRoute:    doc.BestRoute,
		Latitude:     doc.Latitude,
		Longitude:    doc.Longitude,
		LocationName: doc.LocationName,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

// ToEntities converts a slice of BinDocument to Bin entities.
func (m *BinMapper) ToEntities(docs []*document.BinDocument) []*entity.Bin {
	return mapAll(docs, m.ToEntity)
}

// ID returns the numeric identifier of bin.
func (m *BinMapper) ID(bin *entity.Bin) uint {
	return bin.ID
}

// Stamp assigns the identifier and timestamps before a write.
func (m *BinMapper) Stamp(bin *entity.Bin, id uint, now time.Time) {
	if id != 0 {
		bin.ID = id
		bin.CreatedAt = now
	}
	bin.UpdatedAt = now
}

// ComplaintMapper converts between Complaint entity and ComplaintDocument.
type ComplaintMapper struct{}

// NewComplaintMapper creates a new ComplaintMapper instance.
func NewComplaintMapper() *ComplaintMapper {
	return &ComplaintMapper{}
}

// ToDocument converts a Complaint entity to a ComplaintDocument.
func (m *ComplaintMapper) ToDocument(c *entity.Complaint) *document.ComplaintDocument {
	if c == nil {
		return nil
	}
	return &document.ComplaintDocument{
		NumericID: c.ID,
		BinArea:   c.BinArea,
		UserEmail: c.UserEmail,
		Complaint: c.Text,
		Date:      c.Date,
		Time:      c.Time,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToEntity converts a ComplaintDocument to a Complaint entity.
func (m *ComplaintMapper) ToEntity(doc *document.ComplaintDocument) *entity.Complaint {
	if doc == nil {
		return nil
	}
	return &entity.Complaint{
		ID:        doc.NumericID,
		BinArea:   doc.BinArea,
		UserEmail: doc.UserEmail,
		Text:      doc.Complaint,
		Date:      doc.Date,
		Time:      doc.Time,
		Status:    entity.ComplaintStatus(doc.Status),
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

// ToEntities converts a slice of ComplaintDocument to Complaint entities.
func (m *ComplaintMapper) ToEntities(docs []*document.ComplaintDocument) []*entity.Complaint {
	return mapAll(docs, m.ToEntity)
}

// ID returns the numeric identifier of c.
func (m *ComplaintMapper) ID(c *entity.Complaint) uint {
	return c.ID
}

// Stamp assigns the identifier and timestamps before a write.
func (m *ComplaintMapper) Stamp(c *entity.Complaint, id uint, now time.Time) {
	if id != 0 {
		c.ID = id
		c.CreatedAt = now
	}
	c.UpdatedAt = now
}

// WorkMapper converts between Work entity and WorkDocument.
type WorkMapper struct{}

// NewWorkMapper creates a new WorkMapper instance.
func NewWorkMapper() *WorkMapper {
	return &WorkMapper{}
}

// ToDocument converts a Work entity to a WorkDocument.
func (m *WorkMapper) ToDocument(w *entity.Work) *document.WorkDocument {
	if w == nil {
		return nil
	}
	return &document.WorkDocument{
		NumericID: w.ID,
		Email:     w.Email,
		Area:      w.Area,
		Status:    string(w.Status),
		Date:      w.Date,
		Time:      w.Time,
		CreatedAt: w.CreatedAt,
	}
}

// ToEntity converts a WorkDocument to a Work entity.
func (m *WorkMapper) ToEntity(doc *document.WorkDocument) *entity.Work {
	if doc == nil {
		return nil
	}
	return &entity.Work{
		ID:        doc.NumericID,
		Email:     doc.Email,
		Area:      doc.Area,
		Status:    entity.WorkStatus(doc.Status),
		Date:      doc.Date,
		Time:      doc.Time,
		CreatedAt: doc.CreatedAt,
	}
}

// ToEntities converts a slice of WorkDocument to Work entities.
func (m *WorkMapper) ToEntities(docs []*document.WorkDocument) []*entity.Work {
	return mapAll(docs, m.ToEntity)
}

// ID returns the numeric identifier of w.
func (m *WorkMapper) ID(w *entity.Work) uint {
	return w.ID
}

// Stamp assigns the identifier and creation time on insert. Work entries
// carry no update timestamp.
func (m *WorkMapper) Stamp(w *entity.Work, id uint, now time.Time) {
	if id != 0 {
		w.ID = id
		w.CreatedAt = now
	}
}

package ledger

import (
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tuannh982/expenditure-ledger/ledger/commons"
	"github.com/tuannh982/expenditure-ledger/ledger/internal"
	"github.com/tuannh982/expenditure-ledger/utils/collections"
	"github.com/tuannh982/expenditure-ledger/utils/search"
)

// ReceiptService stores receipts, queues them for validation in upload
// order and remembers the most recent uploads.
type ReceiptService struct {
	receipts     collections.Map[string, *commons.Receipt]
	pending      collections.Queue[*commons.Receipt]
	queued       int
	recent       collections.Stack[*commons.Receipt]
	ids          *internal.Sequence
	expenditures *ExpenditureService
	monitor      *internal.Monitor
	log          *log.Entry
}

func NewReceiptService(opts Options, expenditures *ExpenditureService, monitor *internal.Monitor, logger *log.Entry) *ReceiptService {
	return &ReceiptService{
		receipts:     collections.NewHashMapWithCapacity[string, *commons.Receipt](opts.InitialCapacity),
		pending:      collections.NewQueue[*commons.Receipt](),
		recent:       collections.NewStack[*commons.Receipt](),
		ids:          internal.NewSequence(opts.ReceiptPrefix),
		expenditures: expenditures,
		monitor:      monitor,
		log:          logger.WithField("service", "receipts"),
	}
}

func receiptDateOf(r *commons.Receipt) int {
	return commons.DateKey(r.Date)
}

func vendorOf(r *commons.Receipt) string {
	return strings.ToLower(r.Vendor)
}

func receiptIDOf(r *commons.Receipt) string {
	return r.ID
}

// Upload files a receipt against an existing expenditure and queues it for
// validation.
func (s *ReceiptService) Upload(expenditureCode, filePath, vendor string, date time.Time) (*commons.Receipt, error) {
	if _, ok := s.expenditures.Get(expenditureCode); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExpenditure, expenditureCode)
	}
	r := &commons.Receipt{
		ID:              s.ids.Next(),
		ExpenditureCode: expenditureCode,
		Date:            date,
		Vendor:          vendor,
		FilePath:        filePath,
	}
	if err := s.expenditures.AttachReceipt(expenditureCode, r.ID); err != nil {
		return nil, err
	}
	s.receipts.Put(r.ID, r)
	s.pending.Enqueue(r)
	s.queued++
	s.recent.Push(r)
	s.log.WithFields(log.Fields{"receipt": r.ID, "expenditure": expenditureCode}).Debug("receipt uploaded")
	return r, nil
}

// dropDeleted discards receipts at the front of the queue that were
// deleted while waiting.
func (s *ReceiptService) dropDeleted() {
	for !s.pending.IsEmpty() {
		r, _ := s.pending.Peek()
		if s.receipts.ContainsKey(r.ID) {
			return
		}
		_, _ = s.pending.Dequeue()
	}
}

// ValidateNext marks the oldest pending receipt as validated.
func (s *ReceiptService) ValidateNext(validator string) (*commons.Receipt, error) {
	s.dropDeleted()
	r, err := s.pending.Dequeue()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPendingReceipts, err)
	}
	s.queued--
	r.Validated = true
	r.ValidatedBy = validator
	s.log.WithFields(log.Fields{"receipt": r.ID, "validator": validator}).Info("receipt validated")
	return r, nil
}

func (s *ReceiptService) PeekPending() (*commons.Receipt, error) {
	s.dropDeleted()
	r, err := s.pending.Peek()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPendingReceipts, err)
	}
	return r, nil
}

// PendingCount counts receipts still awaiting validation.
func (s *ReceiptService) PendingCount() int {
	return s.queued
}

// Recent returns up to n of the latest uploads, newest first, leaving the
// upload history untouched.
func (s *ReceiptService) Recent(n int) collections.List[*commons.Receipt] {
	ret := collections.NewLinkedList[*commons.Receipt]()
	popped := collections.NewStack[*commons.Receipt]()
	for ret.Size() < n && !s.recent.IsEmpty() {
		r, _ := s.recent.Pop()
		popped.Push(r)
		if _, ok := s.receipts.Get(r.ID); ok {
			ret.Add(r)
		}
	}
	for !popped.IsEmpty() {
		r, _ := popped.Pop()
		s.recent.Push(r)
	}
	return ret
}

func (s *ReceiptService) Get(id string) (*commons.Receipt, bool) {
	return s.receipts.Get(id)
}

// Delete removes the receipt and detaches it from its expenditure.
func (s *ReceiptService) Delete(id string) error {
	r, ok := s.receipts.Remove(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownReceipt, id)
	}
	if !r.Validated {
		s.queued--
	}
	if e, ok := s.expenditures.Get(r.ExpenditureCode); ok && e.ReceiptID == id {
		e.ReceiptID = ""
	}
	s.log.WithField("receipt", id).Debug("receipt deleted")
	return nil
}

func (s *ReceiptService) All() collections.List[*commons.Receipt] {
	return s.receipts.Values()
}

func (s *ReceiptService) Count() int {
	return s.receipts.Size()
}

func (s *ReceiptService) ByDateRange(from, to time.Time) (ret collections.List[*commons.Receipt]) {
	s.monitor.Measure("receipts.date_range", func() {
		ret = search.NewSnapshot(s.All(), receiptDateOf).Range(commons.DateKey(from), commons.DateKey(to))
	})
	return ret
}

// ByVendorPrefix matches vendor names case-insensitively.
func (s *ReceiptService) ByVendorPrefix(prefix string) (ret collections.List[*commons.Receipt]) {
	s.monitor.Measure("receipts.vendor_prefix", func() {
		ret = search.Prefix(search.NewSnapshot(s.All(), vendorOf), strings.ToLower(prefix))
	})
	return ret
}

func (s *ReceiptService) ByVendor(vendor string) (ret collections.List[*commons.Receipt]) {
	s.monitor.Measure("receipts.by_vendor", func() {
		v := strings.ToLower(vendor)
		ret = search.NewSnapshot(s.All(), vendorOf).Range(v, v)
	})
	return ret
}

func (s *ReceiptService) FindByID(id string) (ret *commons.Receipt, ok bool) {
	s.monitor.Measure("receipts.find_by_id", func() {
		ret, ok = search.NewSnapshot(s.All(), receiptIDOf).Find(id)
	})
	return ret, ok
}

func (s *ReceiptService) ByValidation(validated bool) collections.List[*commons.Receipt] {
	return search.Filter(s.All(), func(r *commons.Receipt) bool {
		return r.Validated == validated
	})
}

package handlers

import (
	"time"

	"ktlogistics/models"
	"ktlogistics/voucherno"
)

// fakeReferenceRepo serves registry lookups from in-memory maps.
type fakeReferenceRepo struct {
	vehicles map[string]*models.Vehicle
	products map[string]bool
	pumps    map[string]*models.Pump
	places   map[string]*models.Place // key: name|product
	dealers  map[int64]map[string]bool
	drivers  []*models.Driver
}

func newFakeReferenceRepo() *fakeReferenceRepo {
	return &fakeReferenceRepo{
		vehicles: map[string]*models.Vehicle{},
		products: map[string]bool{},
		pumps:    map[string]*models.Pump{},
		places:   map[string]*models.Place{},
		dealers:  map[int64]map[string]bool{},
	}
}

func (f *fakeReferenceRepo) CreateVehicle(v *models.Vehicle) error {
	v.ID = int64(len(f.vehicles) + 1)
	f.vehicles[v.VehicleNumber] = v
	return nil
}

func (f *fakeReferenceRepo) GetVehicles() ([]*models.Vehicle, error) {
	var out []*models.Vehicle
	for _, v := range f.vehicles {
		out = append(out, v)
	}
	return out, nil
}

func (f *fakeReferenceRepo) VehicleByNumber(n string) (*models.Vehicle, error) {
	return f.vehicles[n], nil
}

func (f *fakeReferenceRepo) CreateProduct(p *models.Product) error {
	f.products[p.Name] = true
	return nil
}

func (f *fakeReferenceRepo) GetProducts() ([]*models.Product, error) { return nil, nil }

func (f *fakeReferenceRepo) ProductExists(name string) (bool, error) {
	return f.products[name], nil
}

func (f *fakeReferenceRepo) CreatePump(p *models.Pump) error {
	f.pumps[p.Name] = p
	return nil
}

func (f *fakeReferenceRepo) GetPumps() ([]*models.Pump, error) { return nil, nil }

func (f *fakeReferenceRepo) PumpByName(name string) (*models.Pump, error) {
	return f.pumps[name], nil
}

func (f *fakeReferenceRepo) CreateDriver(d *models.Driver) error {
	f.drivers = append(f.drivers, d)
	return nil
}

func (f *fakeReferenceRepo) GetDrivers() ([]*models.Driver, error) { return f.drivers, nil }

func (f *fakeReferenceRepo) CreatePlace(p *models.Place) error {
	p.ID = int64(len(f.places) + 1)
	f.places[p.Name+"|"+p.ProductName] = p
	return nil
}

func (f *fakeReferenceRepo) GetPlaces() ([]*models.Place, error) { return nil, nil }

func (f *fakeReferenceRepo) FindPlace(name, productName string) (*models.Place, error) {
	return f.places[name+"|"+productName], nil
}

func (f *fakeReferenceRepo) CreateDealer(d *models.Dealer) error {
	if f.dealers[d.PlaceID] == nil {
		f.dealers[d.PlaceID] = map[string]bool{}
	}
	f.dealers[d.PlaceID][d.Name] = true
	return nil
}

func (f *fakeReferenceRepo) DealerExists(placeID int64, dealerName string) (bool, error) {
	return f.dealers[placeID][dealerName], nil
}

// fakeLoadingAdvanceRepo allocates sequences per prefix in memory.
type fakeLoadingAdvanceRepo struct {
	created []*models.LoadingAdvance
	seqs    map[string]int
	err     error
}

func newFakeLoadingAdvanceRepo() *fakeLoadingAdvanceRepo {
	return &fakeLoadingAdvanceRepo{seqs: map[string]int{}}
}

func (f *fakeLoadingAdvanceRepo) PeekNextVoucherNumber(branchCode string, asOf time.Time) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	fyTag := voucherno.FYTag(asOf)
	return voucherno.Format(branchCode, fyTag, f.seqs[voucherno.Prefix(branchCode, fyTag)]+1), nil
}

func (f *fakeLoadingAdvanceRepo) Create(la *models.LoadingAdvance, branchCode string, asOf time.Time) error {
	if f.err != nil {
		return f.err
	}
	fyTag := voucherno.FYTag(asOf)
	prefix := voucherno.Prefix(branchCode, fyTag)
	f.seqs[prefix]++
	la.ID = int64(len(f.created) + 1)
	la.VoucherNumber = voucherno.Format(branchCode, fyTag, f.seqs[prefix])
	for i := range la.Invoices {
		la.Invoices[i].ID = int64(i + 1)
		la.Invoices[i].LoadingAdvanceID = la.ID
	}
	f.created = append(f.created, la)
	return nil
}

func (f *fakeLoadingAdvanceRepo) GetAll() ([]*models.LoadingAdvance, error) {
	return f.created, f.err
}

func (f *fakeLoadingAdvanceRepo) GetInvoices(id int64) ([]models.LoadingAdvanceInvoice, error) {
	for _, la := range f.created {
		if la.ID == id {
			return la.Invoices, nil
		}
	}
	return nil, nil
}

// fakeRateCardRepo keys cards by vehicle class and tracks place links.
type fakeRateCardRepo struct {
	cards []*models.RateCard
	links map[int64][]int64
}

func newFakeRateCardRepo() *fakeRateCardRepo {
	return &fakeRateCardRepo{links: map[int64][]int64{}}
}

func (f *fakeRateCardRepo) Create(rc *models.RateCard) error {
	rc.ApplyDefaults()
	rc.ID = int64(len(f.cards) + 1)
	f.cards = append(f.cards, rc)
	return nil
}

func (f *fakeRateCardRepo) GetAll() ([]*models.RateCard, error) { return f.cards, nil }

func (f *fakeRateCardRepo) FindByVehicleClass(vt, vst, vbt string) (*models.RateCard, error) {
	for _, rc := range f.cards {
		if rc.VehicleType == vt && rc.VehicleSubType == vst && rc.VehicleBodyType == vbt {
			return rc, nil
		}
	}
	return nil, nil
}

func (f *fakeRateCardRepo) AttachToPlace(placeID, rateCardID int64) error {
	f.links[placeID] = append(f.links[placeID], rateCardID)
	return nil
}

func (f *fakeRateCardRepo) GetByPlace(placeID int64) ([]*models.RateCard, error) {
	var out []*models.RateCard
	for _, id := range f.links[placeID] {
		for _, rc := range f.cards {
			if rc.ID == id {
				out = append(out, rc)
			}
		}
	}
	return out, nil
}

// fakeAckRepo holds one voucher and its acknowledgement history.
type fakeAckRepo struct {
	voucher *models.LoadingAdvance
	acks    []*models.Acknowledgement
}

func (f *fakeAckRepo) GetVoucherForAck(id int64) (*models.LoadingAdvance, error) {
	if f.voucher == nil || f.voucher.ID != id {
		return nil, nil
	}
	return f.voucher, nil
}

func (f *fakeAckRepo) LatestStatus(id int64) (models.VoucherStatus, error) {
	for i := len(f.acks) - 1; i >= 0; i-- {
		if f.acks[i].LoadingAdvanceID == id {
			return f.acks[i].Status, nil
		}
	}
	return models.VoucherPending, nil
}

func (f *fakeAckRepo) Create(ack *models.Acknowledgement) error {
	ack.ID = int64(len(f.acks) + 1)
	f.acks = append(f.acks, ack)
	return nil
}

func (f *fakeAckRepo) GetAll() ([]*models.Acknowledgement, error) {
	return f.acks, nil
}

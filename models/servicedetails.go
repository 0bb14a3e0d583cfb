package models

// ServiceDetail is the closed union of per-service-type detail records.
// Each variant carries the strongly-typed field set stored in that service
// type's detail collection. The marker method keeps the union closed so that
// adding a service type is a compile-time-checked change.
type ServiceDetail interface {
	ServiceType() ServiceType
}

// RegularCleaningDetails holds details for recurring cleans.
type RegularCleaningDetails struct {
	ID              string `bson:"id" json:"id"`
	Frequency       string `bson:"frequency" json:"frequency"`
	Duration        int    `bson:"duration" json:"duration"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
}

func (RegularCleaningDetails) ServiceType() ServiceType { return ServiceRegular }

// OnceOffCleaningDetails holds details for one-time cleans.
type OnceOffCleaningDetails struct {
	ID              string `bson:"id" json:"id"`
	Duration        int    `bson:"duration" json:"duration"`
	TwoCleaners     bool   `bson:"two_cleaners" json:"twoCleaners"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
}

func (OnceOffCleaningDetails) ServiceType() ServiceType { return ServiceOnceOff }

// NDISCleaningDetails holds details for NDIS-funded cleans.
type NDISCleaningDetails struct {
	ID              string `bson:"id" json:"id"`
	Frequency       string `bson:"frequency" json:"frequency"`
	Duration        int    `bson:"duration" json:"duration"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
}

func (NDISCleaningDetails) ServiceType() ServiceType { return ServiceNDIS }

// EndOfLeaseCleaningDetails holds details for end-of-lease cleans, including
// the steam-cleaning room counts and property extras.
type EndOfLeaseCleaningDetails struct {
	ID              string `bson:"id" json:"id"`
	HomeSize        string `bson:"home_size" json:"homeSize"`
	BaseBathrooms   int    `bson:"base_bathrooms" json:"baseBathrooms"`
	BaseToilets     int    `bson:"base_toilets" json:"baseToilets"`
	ExtraBathrooms  int    `bson:"extra_bathrooms" json:"extraBathrooms"`
	ExtraToilets    int    `bson:"extra_toilets" json:"extraToilets"`
	Furnished       bool   `bson:"furnished" json:"furnished"`
	StudyRoom       bool   `bson:"study_room" json:"studyRoom"`
	Pets            bool   `bson:"pets" json:"pets"`
	SteamCarpet     bool   `bson:"steam_carpet" json:"steamCarpet"`
	SteamBedrooms   int    `bson:"steam_bedrooms" json:"steamBedrooms"`
	SteamLivingRoom int    `bson:"steam_living_rooms" json:"steamLivingRooms"`
	SteamHallway    bool   `bson:"steam_hallway" json:"steamHallway"`
	SteamStairs     bool   `bson:"steam_stairs" json:"steamStairs"`
	Balcony         bool   `bson:"balcony" json:"balcony"`
	Garage          bool   `bson:"garage" json:"garage"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
}

func (EndOfLeaseCleaningDetails) ServiceType() ServiceType { return ServiceEndOfLease }

// AirbnbCleaningDetails holds details for short-stay turnover cleans.
type AirbnbCleaningDetails struct {
	ID               string `bson:"id" json:"id"`
	ServiceKind      string `bson:"service_type" json:"serviceType"`
	Frequency        string `bson:"frequency,omitempty" json:"frequency,omitempty"`
	Duration         int    `bson:"duration,omitempty" json:"duration,omitempty"`
	LinenChange      bool   `bson:"linen_change" json:"linenChange"`
	RestockAmenities bool   `bson:"restock_amenities" json:"restockAmenities"`
	SpecialRequests  string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
}

func (AirbnbCleaningDetails) ServiceType() ServiceType { return ServiceAirbnb }

// CommercialCleaningDetails holds details for commercial premises cleans.
type CommercialCleaningDetails struct {
	ID              string `bson:"id" json:"id"`
	ServiceKind     string `bson:"service_type" json:"serviceType"`
	Frequency       string `bson:"frequency,omitempty" json:"frequency,omitempty"`
	HoursPerVisit   int    `bson:"hours_per_visit,omitempty" json:"hoursPerVisit,omitempty"`
	StaffCount      int    `bson:"staff_count,omitempty" json:"staffCount,omitempty"`
	PreferredTime   string `bson:"preferred_time,omitempty" json:"preferredTime,omitempty"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
}

func (CommercialCleaningDetails) ServiceType() ServiceType { return ServiceCommercial }

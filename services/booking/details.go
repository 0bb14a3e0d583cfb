package booking

import (
	"cleanhaven/models"
)

// mapServiceDetails shapes the loosely-typed serviceDetails payload into the
// strongly-typed detail record for the selected service type. The dispatch is
// exhaustive over the closed enumeration; everything below it is a pure
// transform with no side effects.
//
// Mapping is deliberately permissive: optional sub-fields default to their
// zero values rather than erroring. Only the service-type tag itself and the
// presence of the serviceDetails section are strictly validated.
func mapServiceDetails(st models.ServiceType, raw map[string]any) (models.ServiceDetail, error) {
	if !st.Valid() {
		return nil, &UnknownServiceTypeError{Tag: string(st)}
	}
	if raw == nil {
		return nil, &DetailValidationError{Field: "serviceDetails"}
	}

	switch st {
	case models.ServiceRegular:
		return mapRegularDetails(raw), nil
	case models.ServiceOnceOff:
		return mapOnceOffDetails(raw), nil
	case models.ServiceNDIS:
		return mapNDISDetails(raw), nil
	case models.ServiceEndOfLease:
		return mapEndOfLeaseDetails(raw), nil
	case models.ServiceAirbnb:
		return mapAirbnbDetails(raw), nil
	case models.ServiceCommercial:
		return mapCommercialDetails(raw), nil
	}
	return nil, &UnknownServiceTypeError{Tag: string(st)}
}

func mapRegularDetails(raw map[string]any) models.ServiceDetail {
	return &models.RegularCleaningDetails{
		Frequency:       strField(raw, "frequency"),
		Duration:        intField(raw, "duration"),
		SpecialRequests: strField(raw, "specialRequests"),
	}
}

func mapOnceOffDetails(raw map[string]any) models.ServiceDetail {
	return &models.OnceOffCleaningDetails{
		Duration:        intField(raw, "duration"),
		TwoCleaners:     boolField(raw, "twoCleaners"),
		SpecialRequests: strField(raw, "specialRequests"),
	}
}

func mapNDISDetails(raw map[string]any) models.ServiceDetail {
	return &models.NDISCleaningDetails{
		Frequency:       strField(raw, "frequency"),
		Duration:        intField(raw, "duration"),
		SpecialRequests: strField(raw, "specialRequests"),
	}
}

func mapEndOfLeaseDetails(raw map[string]any) models.ServiceDetail {
	steam := subMap(raw, "steamCounts")
	extras := subMap(raw, "extras")
	return &models.EndOfLeaseCleaningDetails{
		HomeSize:        strField(raw, "homeSize"),
		BaseBathrooms:   intField(raw, "baseBathrooms"),
		BaseToilets:     intField(raw, "baseToilets"),
		ExtraBathrooms:  intField(raw, "extraBathrooms"),
		ExtraToilets:    intField(raw, "extraToilets"),
		Furnished:       boolField(raw, "furnished"),
		StudyRoom:       boolField(raw, "studyRoom"),
		Pets:            boolField(raw, "pets"),
		SteamCarpet:     boolField(raw, "steamCarpet"),
		SteamBedrooms:   intField(steam, "bedrooms"),
		SteamLivingRoom: intField(steam, "livingRooms"),
		SteamHallway:    boolField(steam, "hallway"),
		SteamStairs:     boolField(steam, "stairs"),
		Balcony:         boolField(extras, "balcony"),
		Garage:          boolField(extras, "garage"),
		SpecialRequests: strField(raw, "specialRequests"),
	}
}

func mapAirbnbDetails(raw map[string]any) models.ServiceDetail {
	extras := subMap(raw, "extras")
	return &models.AirbnbCleaningDetails{
		ServiceKind:      strField(raw, "serviceType"),
		Frequency:        strField(raw, "frequency"),
		Duration:         intField(raw, "duration"),
		LinenChange:      boolField(extras, "linenChange"),
		RestockAmenities: boolField(extras, "restockAmenities"),
		SpecialRequests:  strField(raw, "specialRequests"),
	}
}

func mapCommercialDetails(raw map[string]any) models.ServiceDetail {
	return &models.CommercialCleaningDetails{
		ServiceKind:     strField(raw, "serviceType"),
		Frequency:       strField(raw, "frequency"),
		HoursPerVisit:   intField(raw, "hoursPerVisit"),
		StaffCount:      intField(raw, "staffCount"),
		PreferredTime:   strField(raw, "preferredTime"),
		SpecialRequests: strField(raw, "specialRequests"),
	}
}

// --- permissive field accessors ---

func strField(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

// intField accepts both JSON numbers (float64 after decoding) and ints.
func intField(m map[string]any, key string) int {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case int64:
		return int(v)
	}
	return 0
}

func boolField(m map[string]any, key string) bool {
	if m == nil {
		return false
	}
	if v, ok := m[key].(bool); ok {
		return v
	}
	return false
}

func subMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	if v, ok := m[key].(map[string]any); ok {
		return v
	}
	return nil
}

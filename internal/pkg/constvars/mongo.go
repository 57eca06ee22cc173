package constvars

const (
	MongoCollectionAppointments   = "patientAppointments"
	MongoCollectionHealthCampaign = "healthCampaigns"
	MongoCollectionHospitals      = "hospitals"
	MongoCollectionVaccines       = "vaccinationdetails"
)

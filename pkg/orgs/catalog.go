package orgs

// DefaultCatalog returns the built-in organization directory.
func DefaultCatalog() []Organization {
	return []Organization{
		{ID: "babcock", Name: "Babcock University", Category: CategoryAcademic, Type: "Academic", Elections: 3, Members: 5708, Description: "Join Babcock University's electoral community."},
		{ID: "UNILAG", Name: "University of Lagos", Category: CategoryAcademic, Type: "Academic", Elections: 15, Members: 9000, Description: "Participate in UNILAG student government elections."},
		{ID: "Landmark", Name: "Landmark University", Category: CategoryAcademic, Type: "Academic", Elections: 10, Members: 578, Description: "Join Landmark University's electoral community."},
		{ID: "RSU", Name: "Rivers State University", Category: CategoryAcademic, Type: "Academic", Elections: 10, Members: 7008, Description: "Join Rivers State University's SUG community."},
		{ID: "LeadCity", Name: "Lead City University", Category: CategoryAcademic, Type: "Academic", Elections: 2, Members: 400, Description: "Join Lead City University's electoral community."},
		{ID: "ESUT", Name: "Enugu State University of Science and Technology", Category: CategoryAcademic, Type: "Academic", Elections: 15, Members: 9278, Description: "Join ESUT's electoral community."},
		{ID: "uniben", Name: "University of Benin", Category: CategoryAcademic, Type: "Academic", Elections: 8, Members: 12000, Description: "Join UNIBEN's vibrant student electoral community."},
		{ID: "unilorin", Name: "University of Ilorin", Category: CategoryAcademic, Type: "Academic", Elections: 10, Members: 15000, Description: "Participate in UNILORIN's student government elections."},
		{ID: "oau", Name: "Obafemi Awolowo University", Category: CategoryAcademic, Type: "Academic", Elections: 12, Members: 18000, Description: "Be part of OAU's active electoral community."},
		{ID: "ui", Name: "University of Ibadan", Category: CategoryAcademic, Type: "Academic", Elections: 15, Members: 20000, Description: "Join UI's prestigious student electoral system."},
		{ID: "abu", Name: "Ahmadu Bello University", Category: CategoryAcademic, Type: "Academic", Elections: 9, Members: 17000, Description: "Participate in ABU's dynamic student elections."},
		{ID: "lasu", Name: "Lagos State University", Category: CategoryAcademic, Type: "Academic", Elections: 7, Members: 14000, Description: "Join LASU's student government electoral process."},
		{ID: "futa", Name: "Federal University of Technology Akure", Category: CategoryAcademic, Type: "Academic", Elections: 6, Members: 10000, Description: "Be part of FUTA's innovative student elections."},
		{ID: "unizik", Name: "Nnamdi Azikiwe University", Category: CategoryAcademic, Type: "Academic", Elections: 11, Members: 16000, Description: "Join UNIZIK's active student electoral community."},
		{ID: "buk", Name: "Bayero University Kano", Category: CategoryAcademic, Type: "Academic", Elections: 5, Members: 9000, Description: "Participate in BUK's student government elections."},
		{ID: "unn", Name: "University of Nigeria Nsukka", Category: CategoryAcademic, Type: "Academic", Elections: 13, Members: 19000, Description: "Join UNN's vibrant student electoral system."},
		{ID: "futminna", Name: "Federal University of Technology Minna", Category: CategoryAcademic, Type: "Academic", Elections: 4, Members: 8000, Description: "Be part of FUTMINNA's innovative student elections."},
		{ID: "covenant", Name: "Covenant University", Category: CategoryAcademic, Type: "Academic", Elections: 3, Members: 6000, Description: "Join Covenant University's student electoral community."},
		{ID: "unical", Name: "University of Calabar", Category: CategoryAcademic, Type: "Academic", Elections: 8, Members: 11000, Description: "Participate in UNICAL's student government elections."},
		{ID: "funaab", Name: "Federal University of Agriculture Abeokuta", Category: CategoryAcademic, Type: "Academic", Elections: 6, Members: 9500, Description: "Be part of FUNAAB's agricultural student elections."},
		{ID: "eksu", Name: "Ekiti State University", Category: CategoryAcademic, Type: "Academic", Elections: 5, Members: 7000, Description: "Join EKSU's student government electoral process."},

		{ID: "paystack123", Name: "Paystack", Category: CategoryCorporate, Type: "Corporate", Elections: 3, Members: 1200, Description: "Vote for the most innovative team at Paystack."},
		{ID: "andela456", Name: "Andela", Category: CategoryCorporate, Type: "Corporate", Elections: 5, Members: 800, Description: "Recognize outstanding developers at Andela."},
		{ID: "konga789", Name: "Konga", Category: CategoryCorporate, Type: "Corporate", Elections: 2, Members: 1500, Description: "Celebrate excellence in e-commerce at Konga."},
		{ID: "flutterwave001", Name: "Flutterwave", Category: CategoryCorporate, Type: "Corporate", Elections: 4, Members: 2000, Description: "Empowering innovation through Flutterwave's community."},
		{ID: "interswitch002", Name: "Interswitch", Category: CategoryCorporate, Type: "Corporate", Elections: 3, Members: 1800, Description: "Recognize top-performing teams at Interswitch."},
		{ID: "jumia003", Name: "Jumia", Category: CategoryCorporate, Type: "Corporate", Elections: 6, Members: 2500, Description: "Celebrate e-commerce excellence at Jumia."},
		{ID: "opay004", Name: "OPay", Category: CategoryCorporate, Type: "Corporate", Elections: 2, Members: 1000, Description: "Vote for the best innovations at OPay."},
		{ID: "cowrywise005", Name: "Cowrywise", Category: CategoryCorporate, Type: "Corporate", Elections: 3, Members: 700, Description: "Recognize financial innovation at Cowrywise."},
		{ID: "piggyvest006", Name: "PiggyVest", Category: CategoryCorporate, Type: "Corporate", Elections: 4, Members: 1200, Description: "Celebrate savings and investment excellence at PiggyVest."},
		{ID: "hotelsng007", Name: "Hotels.ng", Category: CategoryCorporate, Type: "Corporate", Elections: 2, Members: 900, Description: "Vote for the best travel innovations at Hotels.ng."},
		{ID: "kudi008", Name: "Kudi", Category: CategoryCorporate, Type: "Corporate", Elections: 3, Members: 1100, Description: "Empowering financial inclusion through Kudi's community."},
		{ID: "maxng009", Name: "MAX.ng", Category: CategoryCorporate, Type: "Corporate", Elections: 2, Members: 800, Description: "Recognize top-performing teams at MAX.ng."},
		{ID: "gokada010", Name: "Gokada", Category: CategoryCorporate, Type: "Corporate", Elections: 3, Members: 950, Description: "Celebrate innovation in transportation at Gokada."},
		{ID: "paga011", Name: "Paga", Category: CategoryCorporate, Type: "Corporate", Elections: 4, Members: 1500, Description: "Vote for the best financial solutions at Paga."},
		{ID: "teamapt012", Name: "TeamApt", Category: CategoryCorporate, Type: "Corporate", Elections: 3, Members: 1300, Description: "Recognize excellence in fintech at TeamApt."},
		{ID: "mono013", Name: "Mono", Category: CategoryCorporate, Type: "Corporate", Elections: 2, Members: 600, Description: "Celebrate data-driven innovation at Mono."},
		{ID: "paylater014", Name: "Paylater", Category: CategoryCorporate, Type: "Corporate", Elections: 3, Members: 850, Description: "Vote for the best lending solutions at Paylater."},
		{ID: "carbon015", Name: "Carbon", Category: CategoryCorporate, Type: "Corporate", Elections: 4, Members: 1400, Description: "Recognize top-performing teams at Carbon."},
		{ID: "thriveagric016", Name: "Thrive Agric", Category: CategoryCorporate, Type: "Corporate", Elections: 2, Members: 700, Description: "Celebrate agricultural innovation at Thrive Agric."},
	}
}

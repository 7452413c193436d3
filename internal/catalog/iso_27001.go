package catalog

var iso27001 = &Framework{
	ID:   "ISO_27001",
	Name: "ISO/IEC 27001:2022",
	Categories: []Category{
		{
			Name:        "Organizational Controls",
			Description: "Controls concerning organizational policies, responsibilities, and processes for information security.",
			Controls: []Control{
				{
					ID:             "A.5.1",
					Text:           "Policies for information security shall be defined, approved by management, published, communicated and acknowledged by relevant personnel.",
					Recommendation: "Define an information security policy set approved by management, communicated to all personnel, and reviewed at planned intervals.",
				},
				{
					ID:             "A.5.9",
					Text:           "An inventory of information and other associated assets, including owners, shall be developed and maintained.",
					Recommendation: "Maintain an asset inventory with assigned owners covering information assets, hardware, software, and services.",
				},
				{
					ID:             "A.5.24",
					Text:           "The organization shall plan and prepare for managing information security incidents by defining, establishing and communicating incident management processes, roles and responsibilities.",
					Recommendation: "Establish an incident management process with defined roles, reporting channels, and evidence handling procedures.",
				},
			},
		},
		{
			Name:        "People Controls",
			Description: "Controls concerning personnel security before, during, and after employment.",
			Controls: []Control{
				{
					ID:             "A.6.3",
					Text:           "Personnel and relevant interested parties shall receive appropriate information security awareness, education and training.",
					Recommendation: "Provide security awareness training at onboarding and regularly thereafter, tailored to roles with elevated access.",
				},
				{
					ID:             "A.6.5",
					Text:           "Information security responsibilities that remain valid after termination or change of employment shall be defined, enforced and communicated.",
					Recommendation: "Document post-employment obligations (confidentiality, asset return, access revocation) in the termination process.",
				},
			},
		},
		{
			Name:        "Physical Controls",
			Description: "Controls concerning physical security perimeters, equipment, and media.",
			Controls: []Control{
				{
					ID:             "A.7.2",
					Text:           "Secure areas shall be protected by appropriate entry controls and access points.",
					Recommendation: "Define physical entry controls for secure areas, including visitor handling, badge access, and access log review.",
				},
				{
					ID:             "A.7.10",
					Text:           "Storage media shall be managed through their life cycle of acquisition, use, transportation and disposal.",
					Recommendation: "Establish media handling procedures covering classification labeling, secure transport, and verified destruction at end of life.",
				},
			},
		},
		{
			Name:        "Technological Controls",
			Description: "Controls concerning technical security of systems, networks, and applications.",
			Controls: []Control{
				{
					ID:             "A.8.2",
					Text:           "The allocation and use of privileged access rights shall be restricted and managed.",
					Recommendation: "Restrict privileged access to named individuals with documented approval, separate privileged accounts, and periodic review.",
				},
				{
					ID:             "A.8.13",
					Text:           "Backup copies of information, software and systems shall be maintained and regularly tested in accordance with the agreed topic-specific policy on backup.",
					Recommendation: "Define backup scope, frequency, retention, and protection in policy, and test restoration on a defined schedule.",
				},
				{
					ID:             "A.8.24",
					Text:           "Rules for the effective use of cryptography, including cryptographic key management, shall be defined and implemented.",
					Recommendation: "Publish a cryptography policy naming approved algorithms, key lifecycle requirements, and responsibilities for key custody.",
				},
			},
		},
	},
}

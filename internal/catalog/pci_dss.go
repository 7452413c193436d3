package catalog

var pciDSS = &Framework{
	ID:   "PCI_DSS",
	Name: "PCI DSS v4.0",
	Categories: []Category{
		{
			Name:        "Build and Maintain a Secure Network",
			Description: "Install and maintain network security controls and apply secure configurations to all system components.",
			Controls: []Control{
				{
					ID:             "1.2.1",
					Text:           "Configuration standards for network security controls are defined, implemented, and maintained.",
					Recommendation: "Document firewall and network security configuration standards, including the change approval process and periodic rule review.",
				},
				{
					ID:             "2.2.1",
					Text:           "Configuration standards are developed, implemented, and maintained for all system components.",
					Recommendation: "Maintain hardening standards per platform aligned to an industry baseline, and verify components against them before production use.",
				},
			},
		},
		{
			Name:        "Protect Account Data",
			Description: "Protect stored account data and protect cardholder data with strong cryptography during transmission.",
			Controls: []Control{
				{
					ID:             "3.4.1",
					Text:           "PAN is rendered unreadable anywhere it is stored, using approved methods such as one-way hashing, truncation, or strong cryptography.",
					Recommendation: "Define where account data may be stored and require it rendered unreadable with approved cryptography; prohibit storage of sensitive authentication data after authorization.",
				},
				{
					ID:             "4.2.1",
					Text:           "Strong cryptography and security protocols are implemented to safeguard PAN during transmission over open, public networks.",
					Recommendation: "Require strong cryptography for any transmission of account data over open networks, with a documented inventory of trusted keys and certificates.",
				},
			},
		},
		{
			Name:        "Maintain a Vulnerability Management Program",
			Description: "Protect all systems and networks from malicious software and develop and maintain secure systems and software.",
			Controls: []Control{
				{
					ID:             "5.2.1",
					Text:           "An anti-malware solution is deployed on all system components, except those determined to be not at risk from malware.",
					Recommendation: "Deploy anti-malware on all in-scope components and document the periodic evaluation of any components deemed not at risk.",
				},
				{
					ID:             "6.3.1",
					Text:           "Security vulnerabilities are identified and managed, with new vulnerabilities assigned a risk ranking.",
					Recommendation: "Establish a vulnerability identification process using industry sources and assign risk rankings that drive remediation timelines.",
				},
			},
		},
		{
			Name:        "Implement Strong Access Control Measures",
			Description: "Restrict access to system components and cardholder data by business need to know, identify users, and restrict physical access.",
			Controls: []Control{
				{
					ID:             "7.2.1",
					Text:           "An access control model is defined and includes granting access based on business need to know and job classification.",
					Recommendation: "Document an access control model granting least privilege by job function, with documented approval for all access to cardholder data.",
				},
				{
					ID:             "8.3.1",
					Text:           "All user access to system components is authenticated via at least one authentication factor, with multi-factor authentication for access into the CDE.",
					Recommendation: "Require MFA for all access into the cardholder data environment and for all remote network access.",
				},
			},
		},
		{
			Name:        "Regularly Monitor and Test Networks",
			Description: "Log and monitor all access to system components and cardholder data; test security of systems and networks regularly.",
			Controls: []Control{
				{
					ID:             "10.2.1",
					Text:           "Audit logs are enabled and active for all system components and cardholder data.",
					Recommendation: "Enable audit logging for all in-scope components, capturing individual user access to cardholder data, and retain logs per policy.",
				},
				{
					ID:             "11.3.1",
					Text:           "Internal vulnerability scans are performed at least once every three months and after significant changes.",
					Recommendation: "Schedule quarterly internal scans plus scans after significant change; require rescans until high-risk findings are resolved.",
				},
			},
		},
		{
			Name:        "Maintain an Information Security Policy",
			Description: "Support information security with organizational policies and programs.",
			Controls: []Control{
				{
					ID:             "12.1.1",
					Text:           "An overall information security policy is established, published, maintained, and disseminated to all relevant personnel.",
					Recommendation: "Publish an information security policy reviewed at least annually and acknowledged by all personnel upon hire and on change.",
				},
				{
					ID:             "12.6.1",
					Text:           "A formal security awareness program is implemented to make all personnel aware of the entity's information security policy and procedures.",
					Recommendation: "Run a security awareness program at hire and at least annually, covering current threats and each person's role in protecting cardholder data.",
				},
			},
		},
	},
}

package web

//go:generate templ generate -f templates.templ

import (
	"evalgo.org/webapp/models"
)

const pageTitle = "AWS Scalable Web Application"

// PageData is everything the landing page displays.
type PageData struct {
	Info             models.InstanceInfo
	FrameworkVersion string
	Uptime           string
	Updated          string
}

// Features is the static list of infrastructure pieces shown on the page.
var Features = []string{
	"EC2 Instances for compute",
	"Application Load Balancer (ALB) for traffic distribution",
	"Auto Scaling Group (ASG) for scalability",
	"IAM Roles for secure access",
	"CloudWatch for monitoring",
	"SNS for notifications",
	"VPC with public and private subnets",
	"Security Groups for network security",
}

// field is one label/value row of an info card.
type field struct {
	Label string
	Value string
}

func instanceFields(d PageData) []field {
	return []field{
		{"Hostname", d.Info.Hostname},
		{"IP Address", d.Info.IPAddress},
		{"Platform", d.Info.Platform},
	}
}

func environmentFields(d PageData) []field {
	return []field{
		{"Environment", d.Info.Environment},
		{"Region", d.Info.Region},
		{"Instance ID", d.Info.InstanceID},
	}
}

func systemFields(d PageData) []field {
	return []field{
		{"Go Version", d.Info.RuntimeVersion},
		{"Echo Version", d.FrameworkVersion},
		{"Uptime", d.Uptime},
	}
}

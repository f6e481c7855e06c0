package repository

//go:generate mockgen -source=./plan.go -destination=../mocks/mock_plan_repository.go -package=mocks SubscriptionPlanRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./subscription.go -destination=../mocks/mock_subscription_repository.go -package=mocks SubscriptionRepositoryIface
//go:generate mockgen -source=./license_pool.go -destination=../mocks/mock_license_pool_repository.go -package=mocks LicensePoolRepositoryIface
//go:generate mockgen -source=./license_assignment.go -destination=../mocks/mock_license_assignment_repository.go -package=mocks LicenseAssignmentRepositoryIface
//go:generate mockgen -source=./entitlement.go -destination=../mocks/mock_entitlement_repository.go -package=mocks EntitlementRepositoryIface
//go:generate mockgen -source=./invitation.go -destination=../mocks/mock_invitation_repository.go -package=mocks InvitationRepositoryIface
//go:generate mockgen -source=./billing.go -destination=../mocks/mock_billing_repositories.go -package=mocks PaymentTransactionRepositoryIface,AddonOrderRepositoryIface

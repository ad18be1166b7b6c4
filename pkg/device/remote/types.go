package remote

type EmptyResponse struct {
}

type ShowImageRequest struct {
	Image []byte
}

type UpdateRegionRequest struct {
	PosX  uint16
	PosY  uint16
	Image []byte
}
